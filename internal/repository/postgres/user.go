package postgres

import (
	"context"
	"fmt"

	"integrador-hub/internal/entities"
)

const setUserPhotoQuery = `UPDATE users SET doc = jsonb_set(doc, '{fotoUrl}', to_jsonb($2::text)) WHERE id = $1`

// GetUserByID returns the user document with the given UID.
func (p *Postgres) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	return getDoc(ctx, p, "users", userID, entities.ErrUserNotFound, func(u *entities.User, id string) { u.ID = id })
}

// SetUserPhoto stores the profile photo URL of a user.
func (p *Postgres) SetUserPhoto(ctx context.Context, userID, photoURL string) error {
	tag, err := p.db.Exec(ctx, setUserPhotoQuery, userID, photoURL)
	if err != nil {
		p.log.Errorw("failed to set user photo", "error", err, "user_id", userID)
		return fmt.Errorf("set user photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}

	p.log.Infow("user photo updated", "user_id", userID)
	return nil
}
