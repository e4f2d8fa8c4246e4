package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/jwt"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
	"github.com/sbilibin2017/gw-template-studio/internal/services"
)

//go:generate mockgen -source=templates.go -destination=templates_mock_test.go -package=handlers

// TemplateCatalog serves the public template listing.
type TemplateCatalog interface {
	ListActive(ctx context.Context, tag string) ([]models.Template, error)
	GetBySlug(ctx context.Context, raw string) (*models.Template, error)
	IsUnlocked(ctx context.Context, userID uuid.UUID, templateID int64) (bool, error)
}

// PromptUnlocker charges for revealing a template prompt.
type PromptUnlocker interface {
	UnlockPrompt(ctx context.Context, userID uuid.UUID, templateID int64) (*services.UnlockResult, error)
}

// TemplatesResponse wraps the catalog listing
// swagger:model TemplatesResponse
type TemplatesResponse struct {
	Templates []models.Template `json:"templates"`
}

// TemplateResponse is a single template. Unlocked is only set for signed-in callers
// swagger:model TemplateResponse
type TemplateResponse struct {
	models.Template
	Unlocked *bool `json:"unlocked,omitempty"`
}

// NewListTemplatesHandler returns an HTTP handler listing active templates.
// @Summary List templates
// @Description Active templates in display order, optionally filtered by tag
// @Tags templates
// @Produce json
// @Param tag query string false "Tag filter"
// @Success 200 {object} handlers.TemplatesResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /templates [get]
func NewListTemplatesHandler(svc TemplateCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListActive(r.Context(), r.URL.Query().Get("tag"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if list == nil {
			list = []models.Template{}
		}
		writeJSON(w, http.StatusOK, TemplatesResponse{Templates: list})
	}
}

// NewGetTemplateHandler returns an HTTP handler for one template by slug.
// @Summary Get template
// @Tags templates
// @Produce json
// @Param slug path string true "Template slug"
// @Success 200 {object} handlers.TemplateResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /templates/{slug} [get]
func NewGetTemplateHandler(svc TemplateCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		resp := TemplateResponse{Template: *t}
		if claims, ok := jwt.ClaimsFromContext(r.Context()); ok {
			unlocked, err := svc.IsUnlocked(r.Context(), claims.UserID, t.ID)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			resp.Unlocked = &unlocked
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewUnlockPromptHandler returns an HTTP handler revealing a template prompt.
// @Summary Unlock template prompt
// @Description Charges the unlock cost once per user and returns the prompt
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} services.UnlockResult
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 402 {object} handlers.InsufficientXPResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /templates/{id}/unlock [post]
func NewUnlockPromptHandler(svc PromptUnlocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		res, err := svc.UnlockPrompt(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
