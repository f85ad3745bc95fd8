package mongodb

import (
	"context"

	"integrador-hub/internal/entities"
)

// GetProjectByID returns a project document.
func (m *Mongo) GetProjectByID(ctx context.Context, projectID string) (*entities.Project, error) {
	return findByID[entities.Project](ctx, m, projectsCollection, projectID, entities.ErrProjectNotFound)
}

// GetGroupByID returns a group document.
func (m *Mongo) GetGroupByID(ctx context.Context, groupID string) (*entities.Group, error) {
	return findByID[entities.Group](ctx, m, groupsCollection, groupID, entities.ErrGroupNotFound)
}

// GetMateriaByID returns a subject document.
func (m *Mongo) GetMateriaByID(ctx context.Context, materiaID string) (*entities.Materia, error) {
	return findByID[entities.Materia](ctx, m, materiasCollection, materiaID, entities.ErrMateriaNotFound)
}

// GetCarreraByID returns a program document.
func (m *Mongo) GetCarreraByID(ctx context.Context, carreraID string) (*entities.Carrera, error) {
	return findByID[entities.Carrera](ctx, m, carrerasCollection, carreraID, entities.ErrCarreraNotFound)
}
