package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaultsWithPortAlias(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REPOSITORY_BACKEND", "bolt")
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("CORS_ORIGINS", " https://hub.utm.mx ,,https://admin.utm.mx")

	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "bolt", cfg.Repository.Backend)
	require.Equal(t, "project-files", cfg.Supabase.Bucket)
	require.Equal(t, []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"http://localhost:3000",
		"https://hub.utm.mx",
		"https://admin.utm.mx",
	}, cfg.CORS.AllowedOrigins())
}

func TestNewConfigFirestoreNeedsProject(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_KEY", "service-key")

	_, err := NewConfig()
	require.EqualError(t, err, "firestore.project_id is required")
}

func TestAllowedOriginsDoesNotShareDefaults(t *testing.T) {
	a := CORSConfig{Origins: "https://a"}.AllowedOrigins()
	b := CORSConfig{}.AllowedOrigins()
	require.Len(t, a, 4)
	require.Len(t, b, 3)
}

func TestValidate(t *testing.T) {
	base := Config{
		Server:     ServerConfig{Port: 5093},
		Repository: RepositoryConfig{Backend: "mongo"},
		Mongo:      MongoConfig{URI: "mongodb://localhost", Database: "integradorhub"},
		Storage:    StorageConfig{Backend: "b2"},
		B2:         B2Config{KeyID: "k", AppKey: "s", Bucket: "b"},
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no port", func(c *Config) { c.Server.Port = 0 }},
		{"unknown repo", func(c *Config) { c.Repository.Backend = "sqlite" }},
		{"mongo without uri", func(c *Config) { c.Mongo.URI = "" }},
		{"unknown storage", func(c *Config) { c.Storage.Backend = "s3" }},
		{"b2 without key", func(c *Config) { c.B2.AppKey = "" }},
		{"postgres without host", func(c *Config) {
			c.Repository.Backend = "postgres"
			c.Postgres = PostgresConfig{User: "u", Password: "p", DBName: "d"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
