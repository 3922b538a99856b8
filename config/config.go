package config

import (
	"os"
	"strconv"
)

// Config collects everything read from the environment at startup. A .env
// file is loaded first when present (see main). Firestore and Maps
// credentials are read by their client singletons in db and geocode.
type Config struct {
	Port          string
	OpenAIKey     string // optional; advisory summaries are skipped without it
	NLCredentials string // optional; base64, enables source suggestion
	SurgeModelURL string // optional remote surge model

	WindowHours       int    // exposure window around event time
	Workers           int    // per-uid scoring concurrency
	LocationScanLimit int    // newest location records considered per run
	SweepSchedule     string // cron spec for the pending-case sweep
}

func Load() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		NLCredentials:     os.Getenv("NATURAL_LANGUAGE_CREDENTIALS"),
		SurgeModelURL:     os.Getenv("SURGE_MODEL_URL"),
		WindowHours:       getEnvInt("EXPOSURE_WINDOW_HOURS", 24),
		Workers:           getEnvInt("SCORING_WORKERS", 4),
		LocationScanLimit: getEnvInt("LOCATION_SCAN_LIMIT", 500),
		SweepSchedule:     getEnv("SWEEP_SCHEDULE", "*/5 * * * *"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
