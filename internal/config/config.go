// Package config содержит логику чтения конфигурации сервиса ресторана.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит параметры конфигурации сервиса ресторана.
type Config struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	DatabaseURI    string `env:"DATABASE_URI"`
	LlamaServerURL string `env:"LLAMA_SERVER_URL"`

	UseLocalAI          bool   `env:"USE_LOCAL_AI"`
	RestaurantName      string `env:"RESTAURANT_NAME" envDefault:"The Common House"`
	Environment         string `env:"ENVIRONMENT" envDefault:"development"`
	AllowedOrigins      string `env:"ALLOWED_ORIGINS" envDefault:"*"`
	MagicPassword       string `env:"MAGIC_PASSWORD" envDefault:"i'm on yelp"`
	EnableMagicPassword bool   `env:"ENABLE_MAGIC_PASSWORD" envDefault:"true"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами; .env подхватывается, если существует.
func Parse() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envLlamaServerURL := cfg.LlamaServerURL

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.LlamaServerURL, "r", "", "llama-server address for AI responses")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envLlamaServerURL != "" {
		cfg.LlamaServerURL = envLlamaServerURL
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg, nil
}

// AllowedOriginsList возвращает список разрешённых CORS-источников.
func (c *Config) AllowedOriginsList() []string {
	if c.AllowedOrigins == "*" {
		return []string{"*"}
	}

	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
