package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, seeding it from the first
// loadable .env file among the given paths, or ./.env when none are given.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not loadable", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		return loadFromEnv()
	}

	logger.Warn("no usable environment file found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	// A set-but-empty APP_ENV bypasses the tag default.
	if cfg.Env == "" {
		cfg.Env = "development"
	}

	slog.Default().Info("app config loaded",
		"env", cfg.Env,
		"log_format", cfg.Log.Format,
		"display_style", cfg.Display.Style,
		"display_locale", cfg.Display.Locale,
	)
	return &cfg, nil
}
