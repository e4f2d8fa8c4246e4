package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

//go:generate mockgen -source=settings.go -destination=settings_mock_test.go -package=handlers

// SettingsManager reads and writes generation preferences.
type SettingsManager interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
	Update(ctx context.Context, userID uuid.UUID, modelID *string, resolution, aspectRatio string) (*models.UserSettings, error)
	ListModels(ctx context.Context) ([]models.AIModel, error)
}

// SettingsRequest is the body for updating preferences
// swagger:model SettingsRequest
type SettingsRequest struct {
	// default: gemini-flash-image
	ModelID *string `json:"model_id"`

	// default: 1K
	Resolution string `json:"resolution"`

	// default: 1:1
	AspectRatio string `json:"aspect_ratio"`
}

// SettingsResponse carries the preferences and the selectable values
// swagger:model SettingsResponse
type SettingsResponse struct {
	Settings     *models.UserSettings `json:"settings"`
	Resolutions  []string             `json:"resolutions"`
	AspectRatios []string             `json:"aspect_ratios"`
}

// ModelsResponse lists active models
// swagger:model ModelsResponse
type ModelsResponse struct {
	Models []models.AIModel `json:"models"`
}

func settingsResponse(s *models.UserSettings) SettingsResponse {
	return SettingsResponse{
		Settings:     s,
		Resolutions:  models.Resolutions,
		AspectRatios: models.AspectRatios,
	}
}

// NewGetSettingsHandler returns an HTTP handler for the caller's preferences.
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} handlers.SettingsResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /me/settings [get]
func NewGetSettingsHandler(svc SettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		s, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, settingsResponse(s))
	}
}

// NewUpdateSettingsHandler returns an HTTP handler saving the caller's preferences.
// @Summary Update settings
// @Description Empty values reset to defaults
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body handlers.SettingsRequest true "Settings"
// @Success 200 {object} handlers.SettingsResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Unknown model"
// @Security BearerAuth
// @Router /me/settings [put]
func NewUpdateSettingsHandler(svc SettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		var req SettingsRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		s, err := svc.Update(r.Context(), userID, req.ModelID, req.Resolution, req.AspectRatio)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, settingsResponse(s))
	}
}

// NewListModelsHandler returns an HTTP handler listing active models.
// @Summary List models
// @Tags settings
// @Produce json
// @Success 200 {object} handlers.ModelsResponse
// @Router /models [get]
func NewListModelsHandler(svc SettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListModels(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if list == nil {
			list = []models.AIModel{}
		}
		writeJSON(w, http.StatusOK, ModelsResponse{Models: list})
	}
}
