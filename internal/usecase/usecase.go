package usecase

import (
	"time"

	"integrador-hub/internal/repository"
	"integrador-hub/internal/storage"
	"integrador-hub/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	EvaluationUsecaseInterface
	AcademicUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, files storage.Interface, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, repo, files, timeout)
}
