// Package firestoredb implements the repository against Cloud Firestore.
package firestoredb

import (
	"context"
	"fmt"

	"integrador-hub/config"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	usersCollection       = "users"
	projectsCollection    = "projects"
	evaluationsCollection = "evaluations"
	groupsCollection      = "groups"
	materiasCollection    = "materias"
	carrerasCollection    = "carreras"
)

// Firestore wraps a Firestore client.
type Firestore struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.FirestoreConfig
	client  *firestore.Client
}

// New creates a Firestore repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Firestore {
	return &Firestore{
		baseCtx: ctx,
		log:     log.Named("repo.firestore"),
		cfg:     cfg.Firestore,
	}
}

// OnStart creates the client. FIRESTORE_EMULATOR_HOST is honoured by the SDK.
func (f *Firestore) OnStart(_ context.Context) error {
	var opts []option.ClientOption
	if f.cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(f.cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(f.baseCtx, f.cfg.ProjectID, opts...)
	if err != nil {
		return fmt.Errorf("firestore client: %w", err)
	}

	f.client = client
	f.log.Infow("firestore ready", "project_id", f.cfg.ProjectID)
	return nil
}

// OnStop closes the client.
func (f *Firestore) OnStop(_ context.Context) error {
	if f.client == nil {
		return nil
	}
	return f.client.Close()
}
