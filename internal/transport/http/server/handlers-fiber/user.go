package handlers_fiber

import (
	"fmt"
	"net/http"

	"integrador-hub/internal/entities"
	"integrador-hub/internal/usecase/queries"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile returns the profile of the user with the given UID.
func (h *Handler) GetUserProfile(c *fiber.Ctx) error {
	p, err := h.uc.GetUserProfile(c.UserContext(), queries.GetUserProfileQuery{UserID: c.Params("uid")})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(p)
}

// PutUserPhoto replaces the user's profile photo with the multipart "file" field.
func (h *Handler) PutUserPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return h.writeError(c, fmt.Errorf("%w: file is required", entities.ErrInvalidArgument))
	}
	f, err := fh.Open()
	if err != nil {
		return h.writeError(c, err)
	}
	defer f.Close()

	p, err := h.uc.UpdateUserPhoto(c.UserContext(), queries.UpdateUserPhotoCommand{
		UserID:      c.Params("uid"),
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Content:     f,
	})
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(p)
}
