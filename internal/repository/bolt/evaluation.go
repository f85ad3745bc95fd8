package bolt

import (
	"context"

	"integrador-hub/internal/entities"
)

// GetEvaluationsByDocente returns evaluations authored by the docente.
func (s *Store) GetEvaluationsByDocente(_ context.Context, docenteID string) ([]entities.Evaluation, error) {
	return list(s, evaluationsBucket, func(e entities.Evaluation) bool { return e.DocenteID == docenteID })
}

// GetEvaluationsByProject returns evaluations attached to the project.
func (s *Store) GetEvaluationsByProject(_ context.Context, projectID string) ([]entities.Evaluation, error) {
	return list(s, evaluationsBucket, func(e entities.Evaluation) bool { return e.ProjectID == projectID })
}

// PutEvaluation stores an evaluation under its ID.
func (s *Store) PutEvaluation(e entities.Evaluation) error {
	return save(s, evaluationsBucket, e.ID, e)
}
