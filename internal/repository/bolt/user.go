package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	"integrador-hub/internal/entities"

	"go.etcd.io/bbolt"
)

// GetUserByID returns the user stored under the UID.
func (s *Store) GetUserByID(_ context.Context, userID string) (*entities.User, error) {
	u, err := get[entities.User](s, usersBucket, userID, entities.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	u.ID = userID
	return u, nil
}

// SetUserPhoto stores the profile photo URL of a user.
func (s *Store) SetUserPhoto(_ context.Context, userID, photoURL string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(usersBucket)
		v := b.Get([]byte(userID))
		if v == nil {
			return entities.ErrUserNotFound
		}

		var u entities.User
		if err := json.Unmarshal(v, &u); err != nil {
			return fmt.Errorf("decode user %s: %w", userID, err)
		}
		u.FotoURL = &photoURL

		data, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("encode user %s: %w", userID, err)
		}
		return b.Put([]byte(userID), data)
	})
	if err != nil {
		return err
	}

	s.log.Infow("user photo updated", "user_id", userID)
	return nil
}

// PutUser stores a user under its ID.
func (s *Store) PutUser(u entities.User) error {
	return save(s, usersBucket, u.ID, u)
}
