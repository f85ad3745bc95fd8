package domain

import (
	"context"

	"integrador-hub/internal/dto"
	"integrador-hub/internal/usecase/queries"
)

func (u *Usecase) GetProject(ctx context.Context, q queries.GetProjectQuery) (*dto.Project, error) {
	return dispatch(ctx, u, "project.get", u.project, q)
}

func (u *Usecase) GetGroup(ctx context.Context, q queries.GetGroupQuery) (*dto.Group, error) {
	return dispatch(ctx, u, "group.get", u.group, q)
}

func (u *Usecase) GetMateria(ctx context.Context, q queries.GetMateriaQuery) (*dto.Materia, error) {
	return dispatch(ctx, u, "materia.get", u.materia, q)
}

func (u *Usecase) GetCarrera(ctx context.Context, q queries.GetCarreraQuery) (*dto.Carrera, error) {
	return dispatch(ctx, u, "carrera.get", u.carrera, q)
}
