package queries

import (
	"context"
	"fmt"

	"integrador-hub/internal/dto"
	"integrador-hub/internal/entities"
	"integrador-hub/internal/mapper"
	"integrador-hub/internal/repository"
)

// GetProjectQuery asks for one project.
type GetProjectQuery struct {
	ProjectID string
}

// GetProjectHandler resolves GetProjectQuery.
type GetProjectHandler struct {
	projects repository.ProjectInterface
}

var _ Handler[GetProjectQuery, *dto.Project] = (*GetProjectHandler)(nil)

// NewGetProjectHandler builds the handler.
func NewGetProjectHandler(projects repository.ProjectInterface) *GetProjectHandler {
	return &GetProjectHandler{projects: projects}
}

// Handle returns the project or entities.ErrProjectNotFound.
func (h *GetProjectHandler) Handle(ctx context.Context, q GetProjectQuery) (*dto.Project, error) {
	if q.ProjectID == "" {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	p, err := h.projects.GetProjectByID(ctx, q.ProjectID)
	if err != nil {
		return nil, err
	}
	res := mapper.ToProject(*p)
	return &res, nil
}

// GetGroupQuery asks for one group.
type GetGroupQuery struct {
	GroupID string
}

// GetGroupHandler resolves GetGroupQuery.
type GetGroupHandler struct {
	groups repository.GroupInterface
}

var _ Handler[GetGroupQuery, *dto.Group] = (*GetGroupHandler)(nil)

// NewGetGroupHandler builds the handler.
func NewGetGroupHandler(groups repository.GroupInterface) *GetGroupHandler {
	return &GetGroupHandler{groups: groups}
}

// Handle returns the group or entities.ErrGroupNotFound.
func (h *GetGroupHandler) Handle(ctx context.Context, q GetGroupQuery) (*dto.Group, error) {
	if q.GroupID == "" {
		return nil, fmt.Errorf("%w: group id is required", entities.ErrInvalidArgument)
	}
	g, err := h.groups.GetGroupByID(ctx, q.GroupID)
	if err != nil {
		return nil, err
	}
	res := mapper.ToGroup(*g)
	return &res, nil
}

// GetMateriaQuery asks for one subject.
type GetMateriaQuery struct {
	MateriaID string
}

// GetMateriaHandler resolves GetMateriaQuery.
type GetMateriaHandler struct {
	materias repository.MateriaInterface
}

var _ Handler[GetMateriaQuery, *dto.Materia] = (*GetMateriaHandler)(nil)

// NewGetMateriaHandler builds the handler.
func NewGetMateriaHandler(materias repository.MateriaInterface) *GetMateriaHandler {
	return &GetMateriaHandler{materias: materias}
}

// Handle returns the subject or entities.ErrMateriaNotFound.
func (h *GetMateriaHandler) Handle(ctx context.Context, q GetMateriaQuery) (*dto.Materia, error) {
	if q.MateriaID == "" {
		return nil, fmt.Errorf("%w: materia id is required", entities.ErrInvalidArgument)
	}
	m, err := h.materias.GetMateriaByID(ctx, q.MateriaID)
	if err != nil {
		return nil, err
	}
	res := mapper.ToMateria(*m)
	return &res, nil
}

// GetCarreraQuery asks for one program.
type GetCarreraQuery struct {
	CarreraID string
}

// GetCarreraHandler resolves GetCarreraQuery.
type GetCarreraHandler struct {
	carreras repository.CarreraInterface
}

var _ Handler[GetCarreraQuery, *dto.Carrera] = (*GetCarreraHandler)(nil)

// NewGetCarreraHandler builds the handler.
func NewGetCarreraHandler(carreras repository.CarreraInterface) *GetCarreraHandler {
	return &GetCarreraHandler{carreras: carreras}
}

// Handle returns the program or entities.ErrCarreraNotFound.
func (h *GetCarreraHandler) Handle(ctx context.Context, q GetCarreraQuery) (*dto.Carrera, error) {
	if q.CarreraID == "" {
		return nil, fmt.Errorf("%w: carrera id is required", entities.ErrInvalidArgument)
	}
	c, err := h.carreras.GetCarreraByID(ctx, q.CarreraID)
	if err != nil {
		return nil, err
	}
	res := mapper.ToCarrera(*c)
	return &res, nil
}
