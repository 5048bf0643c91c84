package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
}

// Load reads .env when present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:      "8080",
		LogLevel:  "info",
		LogFormat: "console",
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return cfg
}
