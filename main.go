package main

import (
	"context"
	"encoding/base64"
	"log"
	"time"

	language "cloud.google.com/go/language/apiv2"
	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"go-sentinel/alerts"
	"go-sentinel/config"
	"go-sentinel/cronjobs"
	"go-sentinel/db"
	"go-sentinel/forecast"
	"go-sentinel/pipeline"
	"go-sentinel/routes"
	"go-sentinel/scoring"
)

func main() {
	// Load .env file; fine if absent in deployed environments
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		logger.Fatal("failed to initialize Firestore", zap.Error(err))
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// Optional OpenAI client for case advisories
	var openaiClient *openai.Client
	if cfg.OpenAIKey != "" {
		openaiClient = openai.NewClient(cfg.OpenAIKey)
		logger.Info("advisory summaries enabled")
	}

	// Optional Natural Language client for source suggestion
	var langClient *language.Client
	if cfg.NLCredentials != "" {
		creds, err := base64.StdEncoding.DecodeString(cfg.NLCredentials)
		if err != nil {
			logger.Fatal("failed to decode Natural Language credentials", zap.Error(err))
		}
		langClient, err = language.NewClient(context.Background(), option.WithCredentialsJSON(creds))
		if err != nil {
			logger.Fatal("failed to create Natural Language client", zap.Error(err))
		}
		defer langClient.Close()
		logger.Info("source suggestion enabled")
	}

	store := db.NewFirestoreStore(firestoreClient)
	dispatcher := &alerts.SimulatedDispatcher{Log: logger}
	sampler := scoring.NewSimulatedSampler(time.Now().UnixNano())
	forecaster := forecast.New(time.Now().UnixNano())

	orc := pipeline.New(store, dispatcher, sampler, forecaster, logger, pipeline.Config{
		WindowHours:       cfg.WindowHours,
		Workers:           cfg.Workers,
		LocationScanLimit: cfg.LocationScanLimit,
		OpenAI:            openaiClient,
		SurgeModelURL:     cfg.SurgeModelURL,
	})

	// Initialize cron jobs
	if _, err := cronjobs.InitCronJobs(orc, logger, cfg.SweepSchedule); err != nil {
		logger.Fatal("failed to schedule pending case sweep", zap.Error(err))
	}

	r := routes.SetupRouter(firestoreClient, orc, langClient)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
