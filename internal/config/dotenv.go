package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	Port                     string `env:"PORT"`
	DatabaseURL              string `env:"DATABASE_URL"`
	RedisURL                 string `env:"REDIS_URL"`
	CatalogPath              string `env:"CATALOG_PATH"`
	StaticDir                string `env:"STATIC_DIR"`
	AssetBase                string `env:"ASSET_BASE"`
	MaxScriptBytes           int64  `env:"MAX_SCRIPT_BYTES"`
	RenderCacheTTLSeconds    int    `env:"RENDER_CACHE_TTL_SECONDS"`
	DBMaxOpenConns           int    `env:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns           int    `env:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetimeSeconds int    `env:"DB_CONN_MAX_LIFETIME_SECONDS"`
	DBConnMaxIdleTimeSeconds int    `env:"DB_CONN_MAX_IDLE_SECONDS"`
	AutoMigrate              bool   `env:"AUTO_MIGRATE"`
}

func Default() Config {
	return Config{
		Port:                     "8080",
		CatalogPath:              "data/catalog.json",
		StaticDir:                "static",
		AssetBase:                "/static",
		MaxScriptBytes:           1 << 20,
		RenderCacheTTLSeconds:    600,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
	}
}

// Load reads the environment over the defaults. Unset variables keep their
// default value.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxScriptBytes <= 0 {
		cfg.MaxScriptBytes = Default().MaxScriptBytes
	}
	if cfg.RenderCacheTTLSeconds < 0 {
		cfg.RenderCacheTTLSeconds = 0
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) RenderCacheTTL() time.Duration {
	return time.Duration(c.RenderCacheTTLSeconds) * time.Second
}
