package config

import (
	"fmt"
	"os"
)

type GroqConfig struct {
	APIKey              string
	BaseURL             string
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

type SerpConfig struct {
	APIKey  string
	BaseURL string
	Engine  string
}

type Config struct {
	ServerPort  string
	FrontendURL string
	Groq        GroqConfig
	Serp        SerpConfig
}

// Load reads configuration from the environment. Both upstream API keys
// are required: there are no fallback credentials, startup fails
// without them.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnvOrDefault("PORT", "5000"),
		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		Groq: GroqConfig{
			APIKey:              os.Getenv("GROQ_API_KEY"),
			BaseURL:             getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:               getEnvOrDefault("GROQ_MODEL", "llama-3.3-70b-versatile"),
			Temperature:         0.7,
			MaxCompletionTokens: 1024,
		},
		Serp: SerpConfig{
			APIKey:  os.Getenv("SERP_API_KEY"),
			BaseURL: getEnvOrDefault("SERP_API_URL", "https://serpapi.com/search"),
			Engine:  "google",
		},
	}

	if cfg.Groq.APIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable is required")
	}
	if cfg.Serp.APIKey == "" {
		return nil, fmt.Errorf("SERP_API_KEY environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
