package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

//go:generate mockgen -source=profile.go -destination=profile_mock_test.go -package=handlers

// Profiler serves the signed-in user's profile.
type Profiler interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, image []byte) (*models.User, error)
}

// NewMeHandler returns an HTTP handler for the caller's profile.
// @Summary Current user
// @Tags profile
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func NewMeHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		user, err := svc.Me(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewAvatarHandler returns an HTTP handler replacing the caller's profile picture.
// @Summary Upload avatar
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "PNG, JPEG or WebP image"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 413 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /me/avatar [put]
func NewAvatarHandler(svc Profiler, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		image, ok := readImage(w, r, maxBytes)
		if !ok {
			return
		}
		user, err := svc.UpdateAvatar(r.Context(), userID, image)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
