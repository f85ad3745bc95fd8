package usecase

import (
	"context"

	"integrador-hub/internal/dto"
	"integrador-hub/internal/usecase/queries"
)

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	GetUserProfile(ctx context.Context, q queries.GetUserProfileQuery) (*dto.UserProfile, error)
	UpdateUserPhoto(ctx context.Context, c queries.UpdateUserPhotoCommand) (*dto.UserProfile, error)
}

// EvaluationUsecaseInterface abstracts evaluation listings.
type EvaluationUsecaseInterface interface {
	GetEvaluationsByDocente(ctx context.Context, q queries.GetEvaluationsByDocenteQuery) ([]dto.Evaluation, error)
	GetEvaluationsByProject(ctx context.Context, q queries.GetEvaluationsByProjectQuery) ([]dto.Evaluation, error)
}

// AcademicUsecaseInterface abstracts lookups of projects and the academic catalog.
type AcademicUsecaseInterface interface {
	GetProject(ctx context.Context, q queries.GetProjectQuery) (*dto.Project, error)
	GetGroup(ctx context.Context, q queries.GetGroupQuery) (*dto.Group, error)
	GetMateria(ctx context.Context, q queries.GetMateriaQuery) (*dto.Materia, error)
	GetCarrera(ctx context.Context, q queries.GetCarreraQuery) (*dto.Carrera, error)
}
