package queries

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"integrador-hub/internal/dto"
	"integrador-hub/internal/entities"
	"integrador-hub/internal/mapper"
	"integrador-hub/internal/repository"
)

// GetEvaluationsByDocenteQuery lists the evaluations written by one docente.
type GetEvaluationsByDocenteQuery struct {
	DocenteID string
}

// GetEvaluationsByDocenteHandler resolves GetEvaluationsByDocenteQuery.
type GetEvaluationsByDocenteHandler struct {
	evaluations repository.EvaluationInterface
}

var _ Handler[GetEvaluationsByDocenteQuery, []dto.Evaluation] = (*GetEvaluationsByDocenteHandler)(nil)

// NewGetEvaluationsByDocenteHandler builds the handler.
func NewGetEvaluationsByDocenteHandler(evaluations repository.EvaluationInterface) *GetEvaluationsByDocenteHandler {
	return &GetEvaluationsByDocenteHandler{evaluations: evaluations}
}

// Handle returns the docente's evaluations, newest first.
func (h *GetEvaluationsByDocenteHandler) Handle(ctx context.Context, q GetEvaluationsByDocenteQuery) ([]dto.Evaluation, error) {
	if q.DocenteID == "" {
		return nil, fmt.Errorf("%w: docenteId is required", entities.ErrInvalidArgument)
	}

	list, err := h.evaluations.GetEvaluationsByDocente(ctx, q.DocenteID)
	if err != nil {
		return nil, err
	}
	return mapper.ToEvaluationList(newestFirst(list)), nil
}

// GetEvaluationsByProjectQuery lists the evaluations of one project.
type GetEvaluationsByProjectQuery struct {
	ProjectID string
}

// GetEvaluationsByProjectHandler resolves GetEvaluationsByProjectQuery.
type GetEvaluationsByProjectHandler struct {
	evaluations repository.EvaluationInterface
}

var _ Handler[GetEvaluationsByProjectQuery, []dto.Evaluation] = (*GetEvaluationsByProjectHandler)(nil)

// NewGetEvaluationsByProjectHandler builds the handler.
func NewGetEvaluationsByProjectHandler(evaluations repository.EvaluationInterface) *GetEvaluationsByProjectHandler {
	return &GetEvaluationsByProjectHandler{evaluations: evaluations}
}

// Handle returns the project's evaluations, newest first.
func (h *GetEvaluationsByProjectHandler) Handle(ctx context.Context, q GetEvaluationsByProjectQuery) ([]dto.Evaluation, error) {
	if q.ProjectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", entities.ErrInvalidArgument)
	}

	list, err := h.evaluations.GetEvaluationsByProject(ctx, q.ProjectID)
	if err != nil {
		return nil, err
	}
	return mapper.ToEvaluationList(newestFirst(list)), nil
}

// newestFirst orders by CreatedAt descending, then ID ascending for equal timestamps.
func newestFirst(list []entities.Evaluation) []entities.Evaluation {
	sorted := slices.Clone(list)
	slices.SortStableFunc(sorted, func(a, b entities.Evaluation) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return sorted
}
