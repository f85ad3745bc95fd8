// Package mongodb implements the repository against a MongoDB database.
package mongodb

import (
	"context"
	"fmt"

	"integrador-hub/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	usersCollection       = "users"
	projectsCollection    = "projects"
	evaluationsCollection = "evaluations"
	groupsCollection      = "groups"
	materiasCollection    = "materias"
	carrerasCollection    = "carreras"
)

// Mongo wraps a mongo client and the application database.
type Mongo struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.MongoConfig
	client  *mongo.Client
	db      *mongo.Database
}

// New creates a Mongo repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Mongo {
	return &Mongo{
		baseCtx: ctx,
		log:     log.Named("repo.mongo"),
		cfg:     cfg.Mongo,
	}
}

// OnStart connects the client and pings the primary.
func (m *Mongo) OnStart(_ context.Context) error {
	ctx, cancel := context.WithTimeout(m.baseCtx, m.cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.cfg.URI))
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("ping mongo: %w", err)
	}

	m.client = client
	m.db = client.Database(m.cfg.Database)
	m.log.Infow("mongo ready", "database", m.cfg.Database)
	return nil
}

// OnStop disconnects the client.
func (m *Mongo) OnStop(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
