// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"integrador-hub/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	GetUserByID(ctx context.Context, userID string) (*entities.User, error)
	SetUserPhoto(ctx context.Context, userID, photoURL string) error
}

// EvaluationInterface exposes evaluation lookups.
type EvaluationInterface interface {
	GetEvaluationsByDocente(ctx context.Context, docenteID string) ([]entities.Evaluation, error)
	GetEvaluationsByProject(ctx context.Context, projectID string) ([]entities.Evaluation, error)
}

// ProjectInterface exposes project lookups.
type ProjectInterface interface {
	GetProjectByID(ctx context.Context, projectID string) (*entities.Project, error)
}

// GroupInterface exposes group lookups.
type GroupInterface interface {
	GetGroupByID(ctx context.Context, groupID string) (*entities.Group, error)
}

// MateriaInterface exposes subject lookups.
type MateriaInterface interface {
	GetMateriaByID(ctx context.Context, materiaID string) (*entities.Materia, error)
}

// CarreraInterface exposes program lookups.
type CarreraInterface interface {
	GetCarreraByID(ctx context.Context, carreraID string) (*entities.Carrera, error)
}
