package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads, validates and defaults the application configuration. The
// first readable path wins; a missing file is not an error and yields the
// defaults. Environment variables (optionally from a .env file) override
// the file: KEYSTONE_PORT, KEYSTONE_DATA_DIR, KEYSTONE_LOG_LEVEL.
func Load(paths ...string) (AppConfig, error) {
	// .env is optional; absence is the normal case outside development.
	_ = godotenv.Load()

	if len(paths) == 0 {
		paths = []string{"config.yml"}
	}
	var cfg AppConfig
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, err
		}
		break
	}

	if v := os.Getenv("KEYSTONE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("KEYSTONE_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("KEYSTONE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "./data"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	cfg.Endpoints = mergeEndpoints(cfg.Endpoints)

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Storage); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
