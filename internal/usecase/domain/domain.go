package domain

import (
	"context"
	"time"

	"integrador-hub/internal/dto"
	"integrador-hub/internal/repository"
	"integrador-hub/internal/storage"
	"integrador-hub/internal/usecase/queries"

	"go.uber.org/zap"
)

// Usecase routes every operation to the single handler registered for it.
type Usecase struct {
	log     *zap.SugaredLogger
	timeout time.Duration

	userProfile          queries.Handler[queries.GetUserProfileQuery, *dto.UserProfile]
	userPhoto            queries.Handler[queries.UpdateUserPhotoCommand, *dto.UserProfile]
	evaluationsByDocente queries.Handler[queries.GetEvaluationsByDocenteQuery, []dto.Evaluation]
	evaluationsByProject queries.Handler[queries.GetEvaluationsByProjectQuery, []dto.Evaluation]
	project              queries.Handler[queries.GetProjectQuery, *dto.Project]
	group                queries.Handler[queries.GetGroupQuery, *dto.Group]
	materia              queries.Handler[queries.GetMateriaQuery, *dto.Materia]
	carrera              queries.Handler[queries.GetCarreraQuery, *dto.Carrera]
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	files storage.Interface,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:     log,
		timeout: timeout,

		userProfile:          queries.NewGetUserProfileHandler(repo),
		userPhoto:            queries.NewUpdateUserPhotoHandler(log.Named("photo"), repo, files),
		evaluationsByDocente: queries.NewGetEvaluationsByDocenteHandler(repo),
		evaluationsByProject: queries.NewGetEvaluationsByProjectHandler(repo),
		project:              queries.NewGetProjectHandler(repo),
		group:                queries.NewGetGroupHandler(repo),
		materia:              queries.NewGetMateriaHandler(repo),
		carrera:              queries.NewGetCarreraHandler(repo),
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func dispatch[Q any, R any](ctx context.Context, u *Usecase, op string, h queries.Handler[Q, R], q Q) (R, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	res, err := h.Handle(ctx, q)
	if err != nil {
		u.log.Debugw("query failed", "op", op, "error", err)
	}
	return res, err
}
