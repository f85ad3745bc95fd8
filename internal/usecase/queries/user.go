package queries

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"integrador-hub/internal/dto"
	"integrador-hub/internal/entities"
	"integrador-hub/internal/mapper"
	"integrador-hub/internal/repository"
	"integrador-hub/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetUserProfileQuery asks for the profile of one user by UID.
type GetUserProfileQuery struct {
	UserID string
}

// GetUserProfileHandler resolves GetUserProfileQuery.
type GetUserProfileHandler struct {
	users repository.UserInterface
}

var _ Handler[GetUserProfileQuery, *dto.UserProfile] = (*GetUserProfileHandler)(nil)

// NewGetUserProfileHandler builds the handler.
func NewGetUserProfileHandler(users repository.UserInterface) *GetUserProfileHandler {
	return &GetUserProfileHandler{users: users}
}

// Handle returns the profile or entities.ErrUserNotFound.
func (h *GetUserProfileHandler) Handle(ctx context.Context, q GetUserProfileQuery) (*dto.UserProfile, error) {
	if q.UserID == "" {
		return nil, fmt.Errorf("%w: uid is required", entities.ErrInvalidArgument)
	}

	u, err := h.users.GetUserByID(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	profile := mapper.ToUserProfile(*u)
	return &profile, nil
}

// UpdateUserPhotoCommand replaces the profile photo of a user.
type UpdateUserPhotoCommand struct {
	UserID      string
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UpdateUserPhotoHandler uploads the photo and records its URL on the user.
type UpdateUserPhotoHandler struct {
	log   *zap.SugaredLogger
	users repository.UserInterface
	files storage.Interface
}

var _ Handler[UpdateUserPhotoCommand, *dto.UserProfile] = (*UpdateUserPhotoHandler)(nil)

// NewUpdateUserPhotoHandler builds the handler.
func NewUpdateUserPhotoHandler(log *zap.SugaredLogger, users repository.UserInterface, files storage.Interface) *UpdateUserPhotoHandler {
	return &UpdateUserPhotoHandler{log: log, users: users, files: files}
}

// Handle stores the file under users/<uid>/ and returns the refreshed profile.
func (h *UpdateUserPhotoHandler) Handle(ctx context.Context, c UpdateUserPhotoCommand) (*dto.UserProfile, error) {
	switch {
	case c.UserID == "":
		return nil, fmt.Errorf("%w: uid is required", entities.ErrInvalidArgument)
	case c.Content == nil || c.Size <= 0:
		return nil, fmt.Errorf("%w: file is empty", entities.ErrInvalidArgument)
	case !strings.HasPrefix(c.ContentType, "image/"):
		return nil, fmt.Errorf("%w: unsupported content type %q", entities.ErrInvalidArgument, c.ContentType)
	}

	u, err := h.users.GetUserByID(ctx, c.UserID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("users/%s/%s%s", c.UserID, uuid.NewString(), strings.ToLower(filepath.Ext(c.FileName)))
	url, err := h.files.Upload(ctx, key, c.Content, c.ContentType)
	if err != nil {
		return nil, err
	}
	if err := h.users.SetUserPhoto(ctx, c.UserID, url); err != nil {
		if derr := h.files.Delete(ctx, key); derr != nil {
			h.log.Errorw("failed to remove unreferenced photo", "error", derr, "user_id", c.UserID, "key", key)
		}
		return nil, err
	}

	u.FotoURL = &url
	profile := mapper.ToUserProfile(*u)
	return &profile, nil
}
