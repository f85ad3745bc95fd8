package queries

import (
	"context"
	"io"

	"integrador-hub/internal/entities"

	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *userRepoMock) SetUserPhoto(ctx context.Context, userID, photoURL string) error {
	return m.Called(ctx, userID, photoURL).Error(0)
}

type evaluationRepoMock struct{ mock.Mock }

func (m *evaluationRepoMock) GetEvaluationsByDocente(ctx context.Context, docenteID string) ([]entities.Evaluation, error) {
	args := m.Called(ctx, docenteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Evaluation), args.Error(1)
}

func (m *evaluationRepoMock) GetEvaluationsByProject(ctx context.Context, projectID string) ([]entities.Evaluation, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Evaluation), args.Error(1)
}

type storageMock struct{ mock.Mock }

func (m *storageMock) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}

func (m *storageMock) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type academicRepoMock struct{ mock.Mock }

func (m *academicRepoMock) GetProjectByID(ctx context.Context, id string) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *academicRepoMock) GetGroupByID(ctx context.Context, id string) (*entities.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Group), args.Error(1)
}

func (m *academicRepoMock) GetMateriaByID(ctx context.Context, id string) (*entities.Materia, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Materia), args.Error(1)
}

func (m *academicRepoMock) GetCarreraByID(ctx context.Context, id string) (*entities.Carrera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Carrera), args.Error(1)
}
