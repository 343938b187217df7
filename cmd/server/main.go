package main

import (
	"log"
	"log/slog"

	"github.com/rmoran/weathervane/internal/analyzer"
	"github.com/rmoran/weathervane/internal/config"
	"github.com/rmoran/weathervane/internal/llm"
	"github.com/rmoran/weathervane/internal/pipeline"
	"github.com/rmoran/weathervane/internal/server"
	"github.com/rmoran/weathervane/internal/weather"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider := llm.NewOpenAI(&cfg.OpenAI)
	if cfg.OpenAI.APIKey == "" {
		slog.Warn("no OpenAI API key configured, all reports will be rule-based")
	}

	a := analyzer.New(provider, cfg.OpenAI.Timeout)
	p := pipeline.New(weather.NewSynthesizer(nil), a)

	srv := server.New(*cfg, p)
	slog.Info("pipeline deployed",
		"deployment_id", cfg.Pipeline.DeploymentID,
		"default_city", cfg.Pipeline.DefaultCity,
	)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
