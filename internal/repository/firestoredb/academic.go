package firestoredb

import (
	"context"

	"integrador-hub/internal/entities"
)

// GetProjectByID returns a project document.
func (f *Firestore) GetProjectByID(ctx context.Context, projectID string) (*entities.Project, error) {
	return getDoc(ctx, f, projectsCollection, projectID, entities.ErrProjectNotFound, func(v *entities.Project, id string) { v.ID = id })
}

// GetGroupByID returns a group document.
func (f *Firestore) GetGroupByID(ctx context.Context, groupID string) (*entities.Group, error) {
	return getDoc(ctx, f, groupsCollection, groupID, entities.ErrGroupNotFound, func(v *entities.Group, id string) { v.ID = id })
}

// GetMateriaByID returns a subject document.
func (f *Firestore) GetMateriaByID(ctx context.Context, materiaID string) (*entities.Materia, error) {
	return getDoc(ctx, f, materiasCollection, materiaID, entities.ErrMateriaNotFound, func(v *entities.Materia, id string) { v.ID = id })
}

// GetCarreraByID returns a program document.
func (f *Firestore) GetCarreraByID(ctx context.Context, carreraID string) (*entities.Carrera, error) {
	return getDoc(ctx, f, carrerasCollection, carreraID, entities.ErrCarreraNotFound, func(v *entities.Carrera, id string) { v.ID = id })
}
