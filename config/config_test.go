package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("EXPOSURE_WINDOW_HOURS", "")
	t.Setenv("SCORING_WORKERS", "")
	t.Setenv("LOCATION_SCAN_LIMIT", "")
	t.Setenv("SWEEP_SCHEDULE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24, cfg.WindowHours)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 500, cfg.LocationScanLimit)
	assert.Equal(t, "*/5 * * * *", cfg.SweepSchedule)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EXPOSURE_WINDOW_HOURS", "48")
	t.Setenv("SCORING_WORKERS", "8")
	t.Setenv("SURGE_MODEL_URL", "http://models.internal/surge")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 48, cfg.WindowHours)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "http://models.internal/surge", cfg.SurgeModelURL)
}

func TestLoadRejectsBadInts(t *testing.T) {
	t.Setenv("EXPOSURE_WINDOW_HOURS", "not-a-number")
	t.Setenv("SCORING_WORKERS", "-3")
	t.Setenv("LOCATION_SCAN_LIMIT", "0")

	cfg := Load()

	assert.Equal(t, 24, cfg.WindowHours)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 500, cfg.LocationScanLimit)
}
