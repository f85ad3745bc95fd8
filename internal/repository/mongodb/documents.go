package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func findByID[T any](ctx context.Context, m *Mongo, coll, id string, notFound error) (*T, error) {
	var out T
	err := m.db.Collection(coll).FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		m.log.Errorw("failed to find document", "error", err, "collection", coll, "id", id)
		return nil, fmt.Errorf("find %s: %w", coll, err)
	}
	return &out, nil
}

func findMany[T any](ctx context.Context, m *Mongo, coll string, filter bson.M) ([]T, error) {
	cursor, err := m.db.Collection(coll).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		m.log.Errorw("failed to decode documents", "error", err, "collection", coll)
		return nil, fmt.Errorf("decode %s: %w", coll, err)
	}
	return out, nil
}
