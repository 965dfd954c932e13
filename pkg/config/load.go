package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, after loading a .env file
// when one exists in the working directory.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found, using system environment variables")
		}
	} else {
		for _, path := range envFilePath {
			if err := godotenv.Load(path); err != nil {
				logger.Warn("Failed to load environment file", "path", path, "error", err)
			}
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("App config loaded",
		"db_url", maskValue(cfg.DB.Url),
		"db_path", cfg.DB.Path,
		"rates_max_age", cfg.Rates.MaxAge,
		"oxr_api_url", cfg.OpenExchangeRates.ApiUrl,
		"oxr_app_id", maskValue(cfg.OpenExchangeRates.AppID),
		"oxr_http_timeout", cfg.OpenExchangeRates.HTTPTimeout,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
