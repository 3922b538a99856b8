package advisory

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-sentinel/types"
)

const maxScoreLines = 25 // keep the prompt bounded for large matched populations

// GenerateSummary asks the model for a short situation summary of a
// processed case: what happened, who is at risk, where it may spread.
// Purely advisory; callers must tolerate failure.
func GenerateSummary(
	ctx context.Context,
	client *openai.Client,
	c types.Case,
	scores []types.RiskScore,
	predictions []types.SpreadPrediction,
) (string, error) {
	prompt := buildPrompt(c, scores, predictions)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that writes concise public-health situation summaries for hospital operators. Never speculate about individual identities.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5, // focused summary over creative writing
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(c types.Case, scores []types.RiskScore, predictions []types.SpreadPrediction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Case: %s at %s, severity %s, %d patient(s).\n",
		c.CaseType.Label(), c.SourceLabel(), c.Severity, c.PatientCount)

	fmt.Fprintf(&b, "Exposed individuals (%d):\n", len(scores))
	for i, score := range scores {
		if i >= maxScoreLines {
			fmt.Fprintf(&b, "... and %d more\n", len(scores)-maxScoreLines)
			break
		}
		fmt.Fprintf(&b, "- risk %s, exposure score %.0f, duration %d min\n",
			score.RiskLevel, score.ExposureIntensityScore, score.DurationMinutes)
	}

	b.WriteString("Spread forecast:\n")
	for _, p := range predictions {
		fmt.Fprintf(&b, "- +%dh: %s at %d%% (%s)\n", p.ForecastHours, p.ZoneName, p.ProbabilityPct, p.RiskLevel)
	}

	b.WriteString("\nSummarize the situation in 2-3 sentences for the operations dashboard: overall risk picture, where it may spread, and the recommended posture.")
	return b.String()
}
