package surge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// RemoteModel calls an externally hosted surge model instead of the local
// linear fit. Optional; the local Predict stays the fallback when no model
// URL is configured.
type RemoteModel struct {
	URL    string
	Client *http.Client
}

type remoteRequest struct {
	TemperatureC float64 `json:"temperature_c"`
	CrowdDensity float64 `json:"crowd_density"`
}

type remoteResponse struct {
	PredictedSurge int `json:"predicted_surge"`
}

func (m *RemoteModel) Predict(ctx context.Context, temperatureC, crowdDensity float64) (int, error) {
	payload, err := json.Marshal(remoteRequest{TemperatureC: temperatureC, CrowdDensity: crowdDensity})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.URL, bytes.NewBuffer(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.New("surge model returned status: " + resp.Status)
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	if out.PredictedSurge < 0 {
		out.PredictedSurge = 0
	}
	return out.PredictedSurge, nil
}
