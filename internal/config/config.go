package config

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	OpenAI   OpenAIConfig
	Pipeline PipelineConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
}

// OpenAIConfig configures the remote model. An empty APIKey is not an error
// here: the analysis stage treats the missing credential as a remote failure
// and falls back to rule-based reports.
type OpenAIConfig struct {
	APIKey   string        `envconfig:"OPENAI_API_KEY"`
	Endpoint string        `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model    string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout  time.Duration `envconfig:"OPENAI_TIMEOUT" default:"10s"`
}

type PipelineConfig struct {
	DeploymentID string `envconfig:"PIPELINE_DEPLOYMENT_ID"`
	DefaultCity  string `envconfig:"PIPELINE_DEFAULT_CITY" default:"London"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.Pipeline.DeploymentID == "" {
		cfg.Pipeline.DeploymentID = uuid.NewString()
	}

	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
