package domain

import (
	"context"

	"integrador-hub/internal/dto"
	"integrador-hub/internal/usecase/queries"
)

// GetEvaluationsByDocente lists a docente's evaluations, newest first.
func (u *Usecase) GetEvaluationsByDocente(ctx context.Context, q queries.GetEvaluationsByDocenteQuery) ([]dto.Evaluation, error) {
	return dispatch(ctx, u, "evaluations.docente", u.evaluationsByDocente, q)
}

// GetEvaluationsByProject lists a project's evaluations, newest first.
func (u *Usecase) GetEvaluationsByProject(ctx context.Context, q queries.GetEvaluationsByProjectQuery) ([]dto.Evaluation, error) {
	return dispatch(ctx, u, "evaluations.project", u.evaluationsByProject, q)
}
