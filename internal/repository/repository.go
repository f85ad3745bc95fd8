// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"integrador-hub/config"
	"integrador-hub/internal/repository/bolt"
	"integrador-hub/internal/repository/firestoredb"
	"integrador-hub/internal/repository/mongodb"
	"integrador-hub/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	EvaluationInterface
	ProjectInterface
	GroupInterface
	MateriaInterface
	CarreraInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "firestore":
		return firestoredb.New(ctx, log, cfg), nil
	case "mongo":
		return mongodb.New(ctx, log, cfg), nil
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	case "bolt":
		return bolt.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
