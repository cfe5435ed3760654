package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	VisionNone   = "none"
	VisionClaude = "claude"
	VisionOllama = "ollama"
)

type Config struct {
	ListenAddr        string `envconfig:"LISTEN_ADDR" default:":8080"`
	DBPath            string `envconfig:"DB_PATH" default:"data/inspections.db"`
	PhotoPath         string `envconfig:"PHOTO_LOCAL_PATH" default:"uploads"`
	PhotoMaxDimension int    `envconfig:"PHOTO_MAX_DIMENSION" default:"1600"`
	VisionBackend     string `envconfig:"VISION_BACKEND" default:"none"`
	OllamaHost        string `envconfig:"OLLAMA_HOST" default:"http://localhost:11434"`
	OllamaModel       string `envconfig:"OLLAMA_MODEL" default:"llava"`
	ClaudeAPIKey      string `envconfig:"CLAUDE_API_KEY"`
	ClaudeModel       string `envconfig:"CLAUDE_MODEL" default:"claude-sonnet-4-5"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat         string `envconfig:"LOG_FORMAT" default:"json"`
	LogFile           string `envconfig:"LOG_FILE"`
	SeedDemo          bool   `envconfig:"SEED_DEMO" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch cfg.VisionBackend {
	case VisionNone, VisionOllama:
	case VisionClaude:
		if cfg.ClaudeAPIKey == "" {
			return nil, fmt.Errorf("CLAUDE_API_KEY is required when VISION_BACKEND=claude")
		}
	default:
		return nil, fmt.Errorf("unknown VISION_BACKEND %q", cfg.VisionBackend)
	}

	return &cfg, nil
}
