package bolt

import (
	"context"

	"integrador-hub/internal/entities"
)

// GetProjectByID returns a project.
func (s *Store) GetProjectByID(_ context.Context, projectID string) (*entities.Project, error) {
	return get[entities.Project](s, projectsBucket, projectID, entities.ErrProjectNotFound)
}

// GetGroupByID returns a group.
func (s *Store) GetGroupByID(_ context.Context, groupID string) (*entities.Group, error) {
	return get[entities.Group](s, groupsBucket, groupID, entities.ErrGroupNotFound)
}

// GetMateriaByID returns a subject.
func (s *Store) GetMateriaByID(_ context.Context, materiaID string) (*entities.Materia, error) {
	return get[entities.Materia](s, materiasBucket, materiaID, entities.ErrMateriaNotFound)
}

// GetCarreraByID returns a program.
func (s *Store) GetCarreraByID(_ context.Context, carreraID string) (*entities.Carrera, error) {
	return get[entities.Carrera](s, carrerasBucket, carreraID, entities.ErrCarreraNotFound)
}

// PutProject stores a project under its ID.
func (s *Store) PutProject(p entities.Project) error { return save(s, projectsBucket, p.ID, p) }

// PutGroup stores a group under its ID.
func (s *Store) PutGroup(g entities.Group) error { return save(s, groupsBucket, g.ID, g) }

// PutMateria stores a subject under its ID.
func (s *Store) PutMateria(m entities.Materia) error { return save(s, materiasBucket, m.ID, m) }

// PutCarrera stores a program under its ID.
func (s *Store) PutCarrera(c entities.Carrera) error { return save(s, carrerasBucket, c.ID, c) }
