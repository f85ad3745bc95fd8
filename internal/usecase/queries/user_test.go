package queries

import (
	"context"
	"errors"
	"strings"
	"testing"

	"integrador-hub/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetUserProfile(t *testing.T) {
	repo := &userRepoMock{}
	repo.On("GetUserByID", mock.Anything, "uid-1").Return(&entities.User{ID: "uid-1", Email: "a@b.c", Rol: entities.RolAlumno}, nil)

	p, err := NewGetUserProfileHandler(repo).Handle(context.Background(), GetUserProfileQuery{UserID: "uid-1"})
	require.NoError(t, err)
	require.Equal(t, "uid-1", p.UserID)
	require.Nil(t, p.Cedula)
}

func TestGetUserProfileNotFound(t *testing.T) {
	repo := &userRepoMock{}
	repo.On("GetUserByID", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)

	p, err := NewGetUserProfileHandler(repo).Handle(context.Background(), GetUserProfileQuery{UserID: "ghost"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	require.Nil(t, p)
}

func TestUpdateUserPhoto(t *testing.T) {
	repo := &userRepoMock{}
	files := &storageMock{}
	body := strings.NewReader("img")

	repo.On("GetUserByID", mock.Anything, "u1").Return(&entities.User{ID: "u1", Nombre: "Ana"}, nil)
	files.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "users/u1/") && strings.HasSuffix(key, ".png")
	}), body, "image/png").Return("https://cdn/users/u1/x.png", nil)
	repo.On("SetUserPhoto", mock.Anything, "u1", "https://cdn/users/u1/x.png").Return(nil)

	p, err := NewUpdateUserPhotoHandler(zap.NewNop().Sugar(), repo, files).Handle(context.Background(), UpdateUserPhotoCommand{
		UserID:      "u1",
		FileName:    "Avatar.PNG",
		ContentType: "image/png",
		Size:        3,
		Content:     body,
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn/users/u1/x.png", *p.FotoURL)
	repo.AssertExpectations(t)
	files.AssertExpectations(t)
}

func TestUpdateUserPhotoUnknownUserSkipsUpload(t *testing.T) {
	repo := &userRepoMock{}
	files := &storageMock{}
	repo.On("GetUserByID", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)

	_, err := NewUpdateUserPhotoHandler(zap.NewNop().Sugar(), repo, files).Handle(context.Background(), UpdateUserPhotoCommand{
		UserID: "ghost", ContentType: "image/jpeg", Size: 1, Content: strings.NewReader("x"),
	})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	files.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUserPhotoUploadFailure(t *testing.T) {
	repo := &userRepoMock{}
	files := &storageMock{}
	boom := errors.New("bucket down")
	repo.On("GetUserByID", mock.Anything, "u1").Return(&entities.User{ID: "u1"}, nil)
	files.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/png").Return("", boom)

	_, err := NewUpdateUserPhotoHandler(zap.NewNop().Sugar(), repo, files).Handle(context.Background(), UpdateUserPhotoCommand{
		UserID: "u1", ContentType: "image/png", Size: 1, Content: strings.NewReader("x"),
	})
	require.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "SetUserPhoto", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUserPhotoValidation(t *testing.T) {
	h := NewUpdateUserPhotoHandler(zap.NewNop().Sugar(), &userRepoMock{}, &storageMock{})

	cases := []UpdateUserPhotoCommand{
		{ContentType: "image/png", Size: 1, Content: strings.NewReader("x")},
		{UserID: "u1", ContentType: "image/png"},
		{UserID: "u1", ContentType: "application/pdf", Size: 1, Content: strings.NewReader("x")},
	}
	for _, c := range cases {
		_, err := h.Handle(context.Background(), c)
		require.ErrorIs(t, err, entities.ErrInvalidArgument)
	}
}

func TestUpdateUserPhotoRemovesObjectWhenSaveFails(t *testing.T) {
	repo := &userRepoMock{}
	files := &storageMock{}
	boom := errors.New("firestore unavailable")
	var uploadedKey string

	repo.On("GetUserByID", mock.Anything, "u1").Return(&entities.User{ID: "u1"}, nil)
	files.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/png").
		Run(func(args mock.Arguments) { uploadedKey = args.String(1) }).
		Return("https://cdn/users/u1/x.png", nil)
	repo.On("SetUserPhoto", mock.Anything, "u1", "https://cdn/users/u1/x.png").Return(boom)
	files.On("Delete", mock.Anything, mock.MatchedBy(func(key string) bool { return key == uploadedKey })).Return(nil)

	_, err := NewUpdateUserPhotoHandler(zap.NewNop().Sugar(), repo, files).Handle(context.Background(), UpdateUserPhotoCommand{
		UserID: "u1", FileName: "a.png", ContentType: "image/png", Size: 1, Content: strings.NewReader("x"),
	})
	require.ErrorIs(t, err, boom)
	files.AssertCalled(t, "Delete", mock.Anything, uploadedKey)
}

func TestUpdateUserPhotoCleanupFailureKeepsSaveError(t *testing.T) {
	repo := &userRepoMock{}
	files := &storageMock{}
	boom := errors.New("firestore unavailable")

	repo.On("GetUserByID", mock.Anything, "u1").Return(&entities.User{ID: "u1"}, nil)
	files.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/png").Return("https://cdn/x.png", nil)
	repo.On("SetUserPhoto", mock.Anything, "u1", "https://cdn/x.png").Return(boom)
	files.On("Delete", mock.Anything, mock.Anything).Return(errors.New("bucket down"))

	_, err := NewUpdateUserPhotoHandler(zap.NewNop().Sugar(), repo, files).Handle(context.Background(), UpdateUserPhotoCommand{
		UserID: "u1", ContentType: "image/png", Size: 1, Content: strings.NewReader("x"),
	})
	require.ErrorIs(t, err, boom)
	files.AssertExpectations(t)
}
