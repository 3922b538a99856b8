package nlp

import (
	"context"
	"fmt"
	"sort"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
)

// SourceCandidate is a place mentioned in free-text case notes that could
// be the suspected exposure source.
type SourceCandidate struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // LOCATION or ADDRESS
	Mentions int    `json:"mentions"`
}

// SuggestSources sends the case notes to the Cloud Natural Language API and
// returns the LOCATION and ADDRESS entities it finds, most mentioned first.
// Intake staff pick from these when the hospital report names a place but
// no source id.
func SuggestSources(ctx context.Context, client *language.Client, notes string) ([]SourceCandidate, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: notes,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	var candidates []SourceCandidate
	for _, e := range resp.Entities {
		t := e.Type.String()
		if t != "LOCATION" && t != "ADDRESS" {
			continue
		}
		candidates = append(candidates, SourceCandidate{
			Name:     e.Name,
			Type:     t,
			Mentions: len(e.Mentions),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Mentions > candidates[j].Mentions
	})
	return candidates, nil
}
