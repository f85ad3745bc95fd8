package postgres

import (
	"context"

	"integrador-hub/internal/entities"
)

func setEvaluationID(e *entities.Evaluation, id string) { e.ID = id }

// GetEvaluationsByDocente returns evaluations authored by the docente.
func (p *Postgres) GetEvaluationsByDocente(ctx context.Context, docenteID string) ([]entities.Evaluation, error) {
	return listDocs(ctx, p, "evaluations", "docenteId", docenteID, setEvaluationID)
}

// GetEvaluationsByProject returns evaluations attached to the project.
func (p *Postgres) GetEvaluationsByProject(ctx context.Context, projectID string) ([]entities.Evaluation, error) {
	return listDocs(ctx, p, "evaluations", "projectId", projectID, setEvaluationID)
}
