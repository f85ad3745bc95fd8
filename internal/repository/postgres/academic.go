package postgres

import (
	"context"

	"integrador-hub/internal/entities"
)

// GetProjectByID returns a project document.
func (p *Postgres) GetProjectByID(ctx context.Context, projectID string) (*entities.Project, error) {
	return getDoc(ctx, p, "projects", projectID, entities.ErrProjectNotFound, func(v *entities.Project, id string) { v.ID = id })
}

// GetGroupByID returns a group document.
func (p *Postgres) GetGroupByID(ctx context.Context, groupID string) (*entities.Group, error) {
	return getDoc(ctx, p, "groups", groupID, entities.ErrGroupNotFound, func(v *entities.Group, id string) { v.ID = id })
}

// GetMateriaByID returns a subject document.
func (p *Postgres) GetMateriaByID(ctx context.Context, materiaID string) (*entities.Materia, error) {
	return getDoc(ctx, p, "materias", materiaID, entities.ErrMateriaNotFound, func(v *entities.Materia, id string) { v.ID = id })
}

// GetCarreraByID returns a program document.
func (p *Postgres) GetCarreraByID(ctx context.Context, carreraID string) (*entities.Carrera, error) {
	return getDoc(ctx, p, "carreras", carreraID, entities.ErrCarreraNotFound, func(v *entities.Carrera, id string) { v.ID = id })
}
