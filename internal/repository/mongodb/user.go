package mongodb

import (
	"context"
	"fmt"

	"integrador-hub/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID returns the user document with the given UID.
func (m *Mongo) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	return findByID[entities.User](ctx, m, usersCollection, userID, entities.ErrUserNotFound)
}

// SetUserPhoto stores the profile photo URL of a user.
func (m *Mongo) SetUserPhoto(ctx context.Context, userID, photoURL string) error {
	res, err := m.db.Collection(usersCollection).UpdateByID(ctx, userID, bson.M{"$set": bson.M{"fotoUrl": photoURL}})
	if err != nil {
		m.log.Errorw("failed to set user photo", "error", err, "user_id", userID)
		return fmt.Errorf("set user photo: %w", err)
	}
	if res.MatchedCount == 0 {
		return entities.ErrUserNotFound
	}

	m.log.Infow("user photo updated", "user_id", userID)
	return nil
}
