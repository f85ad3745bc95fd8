package mongodb

import (
	"context"

	"integrador-hub/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
)

// GetEvaluationsByDocente returns evaluations authored by the docente.
func (m *Mongo) GetEvaluationsByDocente(ctx context.Context, docenteID string) ([]entities.Evaluation, error) {
	return findMany[entities.Evaluation](ctx, m, evaluationsCollection, bson.M{"docenteId": docenteID})
}

// GetEvaluationsByProject returns evaluations attached to the project.
func (m *Mongo) GetEvaluationsByProject(ctx context.Context, projectID string) ([]entities.Evaluation, error) {
	return findMany[entities.Evaluation](ctx, m, evaluationsCollection, bson.M{"projectId": projectID})
}
