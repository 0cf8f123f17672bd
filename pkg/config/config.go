// Package config collects everything the tools read from the
// environment. It is resolved once in main; the core packages only
// ever see explicit values.
package config

import "os"

// Config carries API credentials and service endpoints.
type Config struct {
	EDINETAPIKey string

	LLMProvider  string // "gemini" or "openai"
	GeminiAPIKey string
	OpenAIAPIKey string
	LLMModel     string

	DatabaseURL string
}

// FromEnv builds a Config from environment variables. Missing values
// stay empty; callers decide which features they need.
func FromEnv() Config {
	cfg := Config{
		EDINETAPIKey: os.Getenv("EDINET_API_KEY"),
		LLMProvider:  os.Getenv("LLM_PROVIDER"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		LLMModel:     os.Getenv("LLM_MODEL"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}
	if cfg.LLMProvider == "" {
		if cfg.GeminiAPIKey != "" {
			cfg.LLMProvider = "gemini"
		} else if cfg.OpenAIAPIKey != "" {
			cfg.LLMProvider = "openai"
		}
	}
	return cfg
}

// LLMAPIKey returns the key matching the selected provider.
func (c Config) LLMAPIKey() string {
	switch c.LLMProvider {
	case "gemini":
		return c.GeminiAPIKey
	case "openai":
		return c.OpenAIAPIKey
	default:
		return ""
	}
}
