package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Repository RepositoryConfig `mapstructure:"repository"`
	Firestore  FirestoreConfig  `mapstructure:"firestore"`
	Mongo      MongoConfig      `mapstructure:"mongo"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Bolt       BoltConfig       `mapstructure:"bolt"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Supabase   SupabaseConfig   `mapstructure:"supabase"`
	B2         B2Config         `mapstructure:"b2"`
}

// Validate ensures required fields are present for the selected backends.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}

	switch c.Repository.Backend {
	case "firestore":
		if c.Firestore.ProjectID == "" {
			return errors.New("firestore.project_id is required")
		}
	case "mongo":
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return errors.New("mongo.uri and mongo.database are required")
		}
	case "postgres":
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return errors.New("postgres credentials are required")
		}
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
	case "bolt":
		if c.Bolt.Path == "" {
			return errors.New("bolt.path is required")
		}
	default:
		return fmt.Errorf("unknown repository.backend %q", c.Repository.Backend)
	}

	switch c.Storage.Backend {
	case "supabase":
		if c.Supabase.URL == "" || c.Supabase.Key == "" || c.Supabase.Bucket == "" {
			return errors.New("supabase url, key and bucket are required")
		}
	case "b2":
		if c.B2.KeyID == "" || c.B2.AppKey == "" || c.B2.Bucket == "" {
			return errors.New("b2 key id, app key and bucket are required")
		}
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// CORSConfig lists origins allowed on top of the local development ones.
type CORSConfig struct {
	Origins string `mapstructure:"origins"`
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
}

// AllowedOrigins returns the development origins followed by the configured extra ones.
func (c CORSConfig) AllowedOrigins() []string {
	origins := append([]string(nil), defaultOrigins...)
	for _, o := range strings.Split(c.Origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// RepositoryConfig selects the document store backend.
type RepositoryConfig struct {
	Backend string `mapstructure:"backend"`
}

// FirestoreConfig describes the Firestore project to use.
type FirestoreConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// MongoConfig describes MongoDB connection parameters.
type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// BoltConfig describes the embedded database file.
type BoltConfig struct {
	Path        string        `mapstructure:"path"`
	SeedFile    string        `mapstructure:"seed_file"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

// StorageConfig selects the blob storage backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// SupabaseConfig describes the Supabase Storage project and bucket.
type SupabaseConfig struct {
	URL    string `mapstructure:"url"`
	Key    string `mapstructure:"key"`
	Bucket string `mapstructure:"bucket"`
}

// B2Config describes Backblaze B2 credentials and bucket.
type B2Config struct {
	KeyID  string `mapstructure:"key_id"`
	AppKey string `mapstructure:"app_key"`
	Bucket string `mapstructure:"bucket"`
}
