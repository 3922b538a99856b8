package surge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteModelPredict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req remoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 45.0, req.TemperatureC)
		assert.Equal(t, 8.0, req.CrowdDensity)

		json.NewEncoder(w).Encode(remoteResponse{PredictedSurge: 52})
	}))
	defer srv.Close()

	m := &RemoteModel{URL: srv.URL}
	got, err := m.Predict(context.Background(), 45, 8)

	require.NoError(t, err)
	assert.Equal(t, 52, got)
}

func TestRemoteModelClampsNegative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(remoteResponse{PredictedSurge: -4})
	}))
	defer srv.Close()

	m := &RemoteModel{URL: srv.URL}
	got, err := m.Predict(context.Background(), 10, 0)

	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestRemoteModelServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model offline", http.StatusBadGateway)
	}))
	defer srv.Close()

	m := &RemoteModel{URL: srv.URL}
	_, err := m.Predict(context.Background(), 10, 0)

	assert.Error(t, err)
}
