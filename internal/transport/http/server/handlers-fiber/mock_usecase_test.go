package handlers_fiber

import (
	"context"

	"integrador-hub/internal/dto"
	"integrador-hub/internal/usecase"
	"integrador-hub/internal/usecase/queries"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type ucMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*ucMock)(nil)

func (m *ucMock) GetUserProfile(ctx context.Context, q queries.GetUserProfileQuery) (*dto.UserProfile, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserProfile), args.Error(1)
}

func (m *ucMock) UpdateUserPhoto(ctx context.Context, c queries.UpdateUserPhotoCommand) (*dto.UserProfile, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserProfile), args.Error(1)
}

func (m *ucMock) GetEvaluationsByDocente(ctx context.Context, q queries.GetEvaluationsByDocenteQuery) ([]dto.Evaluation, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.Evaluation), args.Error(1)
}

func (m *ucMock) GetEvaluationsByProject(ctx context.Context, q queries.GetEvaluationsByProjectQuery) ([]dto.Evaluation, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.Evaluation), args.Error(1)
}

func (m *ucMock) GetProject(ctx context.Context, q queries.GetProjectQuery) (*dto.Project, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Project), args.Error(1)
}

func (m *ucMock) GetGroup(ctx context.Context, q queries.GetGroupQuery) (*dto.Group, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Group), args.Error(1)
}

func (m *ucMock) GetMateria(ctx context.Context, q queries.GetMateriaQuery) (*dto.Materia, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Materia), args.Error(1)
}

func (m *ucMock) GetCarrera(ctx context.Context, q queries.GetCarreraQuery) (*dto.Carrera, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Carrera), args.Error(1)
}

func newTestApp(uc *ucMock) *fiber.App {
	app := fiber.New()
	NewHandler(zap.NewNop().Sugar(), uc).Register(app)
	return app
}
