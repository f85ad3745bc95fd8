// Package domain contains application Usecases dispatching queries to their handlers.
package domain

import (
	"context"

	"integrador-hub/internal/dto"
	"integrador-hub/internal/usecase/queries"
)

// GetUserProfile returns the profile of a user.
func (u *Usecase) GetUserProfile(ctx context.Context, q queries.GetUserProfileQuery) (*dto.UserProfile, error) {
	return dispatch(ctx, u, "user.profile", u.userProfile, q)
}

// UpdateUserPhoto uploads a new profile photo.
func (u *Usecase) UpdateUserPhoto(ctx context.Context, c queries.UpdateUserPhotoCommand) (*dto.UserProfile, error) {
	p, err := dispatch(ctx, u, "user.photo", u.userPhoto, c)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user photo updated", "user_id", c.UserID, "size", c.Size)
	return p, nil
}
