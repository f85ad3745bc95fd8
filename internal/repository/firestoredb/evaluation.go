package firestoredb

import (
	"context"

	"integrador-hub/internal/entities"
)

func setEvaluationID(e *entities.Evaluation, id string) { e.ID = id }

// GetEvaluationsByDocente returns evaluations authored by the docente.
func (f *Firestore) GetEvaluationsByDocente(ctx context.Context, docenteID string) ([]entities.Evaluation, error) {
	return listWhere(ctx, f, evaluationsCollection, "docenteId", docenteID, setEvaluationID)
}

// GetEvaluationsByProject returns evaluations attached to the project.
func (f *Firestore) GetEvaluationsByProject(ctx context.Context, projectID string) ([]entities.Evaluation, error) {
	return listWhere(ctx, f, evaluationsCollection, "projectId", projectID, setEvaluationID)
}
