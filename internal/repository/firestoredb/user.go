package firestoredb

import (
	"context"
	"fmt"

	"integrador-hub/internal/entities"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GetUserByID returns the user document with the given UID.
func (f *Firestore) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	return getDoc(ctx, f, usersCollection, userID, entities.ErrUserNotFound, func(u *entities.User, id string) { u.ID = id })
}

// SetUserPhoto stores the profile photo URL of a user.
func (f *Firestore) SetUserPhoto(ctx context.Context, userID, photoURL string) error {
	if err := updateField(ctx, f, usersCollection, userID, "fotoUrl", photoURL); err != nil {
		if status.Code(err) == codes.NotFound {
			return entities.ErrUserNotFound
		}
		f.log.Errorw("failed to set user photo", "error", err, "user_id", userID)
		return fmt.Errorf("set user photo: %w", err)
	}

	f.log.Infow("user photo updated", "user_id", userID)
	return nil
}
