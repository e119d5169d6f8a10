package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envKeys maps the environment variables the service reads onto koanf keys.
var envKeys = map[string]string{
	"PORT":        "port",
	"ENV":         "env",
	"LOG_LEVEL":   "log_level",
	"CLIENT_URL":  "client_url",
	"MONGODB_URI": "mongodb_uri",
	"DB_NAME":     "db_name",
}

type Config struct {
	Port      string `koanf:"port" validate:"required"`
	Env       string `koanf:"env" validate:"required"`
	LogLevel  string `koanf:"log_level" validate:"required"`
	ClientURL string `koanf:"client_url"`
	MongoURI  string `koanf:"mongodb_uri" validate:"required"`
	DBName    string `koanf:"db_name" validate:"required"`
}

// Load reads the .env file (if any) and the process environment into a Config.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	cfg.Port = withDefault(cfg.Port, "5000")
	cfg.Env = withDefault(cfg.Env, "development")
	cfg.LogLevel = withDefault(cfg.LogLevel, "info")
	cfg.DBName = withDefault(cfg.DBName, "localFoodLovers")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// AllowedOrigins splits CLIENT_URL into the CORS allowlist. An empty value allows any origin.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.ClientURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, strings.TrimSuffix(o, "/"))
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func withDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
