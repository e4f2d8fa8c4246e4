package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
	"github.com/sbilibin2017/gw-template-studio/internal/services"
)

//go:generate mockgen -source=admin.go -destination=admin_mock_test.go -package=handlers

// TemplateAdmin manages the template catalog.
type TemplateAdmin interface {
	ListAll(ctx context.Context) ([]models.Template, error)
	Create(ctx context.Context, in services.TemplateInput) (*models.Template, error)
	Update(ctx context.Context, id int64, in services.TemplateInput) (*models.Template, error)
	Delete(ctx context.Context, id int64) error
}

// ModelAdmin manages AI models.
type ModelAdmin interface {
	UpsertModel(ctx context.Context, model *models.AIModel) error
}

// UpsertModelRequest is the body for creating or updating a model
// swagger:model UpsertModelRequest
type UpsertModelRequest struct {
	// required: true
	// default: Gemini Flash Image
	Name string `json:"name"`

	// default: 10
	XPCost int64 `json:"xp_cost"`

	// default: true
	IsActive bool `json:"is_active"`

	// default: false
	IsDefault bool `json:"is_default"`
}

// NewAdminListTemplatesHandler returns an HTTP handler listing every template.
// @Summary List all templates
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.TemplatesResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /admin/templates [get]
func NewAdminListTemplatesHandler(svc TemplateAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListAll(r.Context())
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

// NewAdminCreateTemplateHandler returns an HTTP handler creating a template.
// @Summary Create template
// @Tags admin
// @Accept json
// @Produce json
// @Param template body services.TemplateInput true "Template"
// @Success 201 {object} models.Template
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Slug already taken"
// @Security BearerAuth
// @Router /admin/templates [post]
func NewAdminCreateTemplateHandler(svc TemplateAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in services.TemplateInput
		if !decodeJSON(w, r, &in) {
			return
		}
		t, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
	}
}

// NewAdminUpdateTemplateHandler returns an HTTP handler replacing a template.
// @Summary Update template
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param template body services.TemplateInput true "Template"
// @Success 200 {object} models.Template
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /admin/templates/{id} [put]
func NewAdminUpdateTemplateHandler(svc TemplateAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}
		var in services.TemplateInput
		if !decodeJSON(w, r, &in) {
			return
		}
		t, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// NewAdminDeleteTemplateHandler returns an HTTP handler deleting a template.
// @Summary Delete template
// @Tags admin
// @Param id path int true "Template ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /admin/templates/{id} [delete]
func NewAdminDeleteTemplateHandler(svc TemplateAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewAdminUpsertModelHandler returns an HTTP handler creating or updating a model.
// @Summary Upsert AI model
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Model ID"
// @Param model body handlers.UpsertModelRequest true "Model"
// @Success 200 {object} models.AIModel
// @Failure 400 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /admin/models/{id} [put]
func NewAdminUpsertModelHandler(svc ModelAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpsertModelRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		m := &models.AIModel{
			ID:        chi.URLParam(r, "id"),
			Name:      req.Name,
			XPCost:    req.XPCost,
			IsActive:  req.IsActive,
			IsDefault: req.IsDefault,
		}
		if err := svc.UpsertModel(r.Context(), m); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}
