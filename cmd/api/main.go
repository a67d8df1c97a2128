package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	apianalysis "property_proforma/pkg/api/analysis"
	"property_proforma/pkg/config"
	"property_proforma/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfgPath := os.Getenv("ENGINE_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/engine.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load engine config")
	}

	// Database is optional: without DATABASE_URL the API still computes,
	// it just cannot persist.
	var repo *store.AnalysisRepo
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		if err := store.InitDB(context.Background(), dbURL); err != nil {
			log.WithError(err).Fatal("failed to initialize database")
		}
		defer store.Close()
		repo = store.NewAnalysisRepo()
		log.Info("persistence enabled")
	} else {
		log.Warn("DATABASE_URL not set, running without persistence")
	}

	handler := apianalysis.NewHandler(cfg, repo)
	http.HandleFunc("/api/analysis/run", handler.HandleRun)
	http.HandleFunc("/api/analysis/scenarios", handler.HandleScenarios)
	http.HandleFunc("/api/analysis/report", handler.HandleReport)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("API server starting")
	log.Info("  - POST /api/analysis/run")
	log.Info("  - POST /api/analysis/scenarios")
	log.Info("  - POST /api/analysis/report")
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
