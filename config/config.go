// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5093)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 10*time.Second)

	v.SetDefault("cors.origins", "")

	v.SetDefault("repository.backend", "firestore")

	v.SetDefault("mongo.database", "integradorhub")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "integradorhub")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.migrations_dir", "db/migrations")
	v.SetDefault("postgres.migrate_timeout", 10*time.Second)
	v.SetDefault("postgres.query_timeout", 2*time.Second)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)

	v.SetDefault("bolt.path", "data/integradorhub.db")
	v.SetDefault("bolt.open_timeout", time.Second)

	v.SetDefault("storage.backend", "supabase")
	v.SetDefault("supabase.bucket", "project-files")
}

// Keys read from non-derived env names; PORT is what the hosting platform injects.
var envAliases = map[string][]string{
	"server.port":  {"PORT", "SERVER_PORT"},
	"cors.origins": {"CORS_ORIGINS"},
}

func bindEnvs(v *viper.Viper) error {
	keys := []string{
		"logging.level",
		"server.host",
		"server.shutdown_timeout",
		"http.request_timeout",
		"repository.backend",
		"firestore.project_id",
		"firestore.credentials_file",
		"mongo.uri",
		"mongo.database",
		"mongo.connect_timeout",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.db_name",
		"postgres.ssl_mode",
		"postgres.migrations_dir",
		"postgres.migrate_timeout",
		"postgres.query_timeout",
		"postgres.max_conns",
		"postgres.min_conns",
		"bolt.path",
		"bolt.seed_file",
		"bolt.open_timeout",
		"storage.backend",
		"supabase.url",
		"supabase.key",
		"supabase.bucket",
		"b2.key_id",
		"b2.app_key",
		"b2.bucket",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	for k, envs := range envAliases {
		if err := v.BindEnv(append([]string{k}, envs...)...); err != nil {
			return fmt.Errorf("bind env %s: %w", k, err)
		}
	}
	return nil
}
