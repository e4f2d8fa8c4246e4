package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
	"github.com/sbilibin2017/gw-template-studio/internal/services"
)

// IdempotencyHeader carries the client-chosen generation key.
const IdempotencyHeader = "Idempotency-Key"

//go:generate mockgen -source=generations.go -destination=generations_mock_test.go -package=handlers

// Generator runs and lists image generations.
type Generator interface {
	Generate(ctx context.Context, in services.GenerateInput) (*services.GenerateResult, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Generation, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Generation, error)
}

// GenerationsResponse wraps a page of generations
// swagger:model GenerationsResponse
type GenerationsResponse struct {
	Generations []models.Generation `json:"generations"`
}

// NewCreateGenerationHandler returns an HTTP handler that runs a generation.
// @Summary Generate image
// @Description Debits the model cost, runs the template prompt against the uploaded photo and refunds on failure. Repeating an Idempotency-Key returns the stored generation with 200.
// @Tags generations
// @Accept multipart/form-data
// @Produce json
// @Param Idempotency-Key header string false "Client idempotency key"
// @Param template_id formData int true "Template ID"
// @Param model_id formData string false "Model ID"
// @Param image formData file true "PNG, JPEG or WebP image"
// @Success 201 {object} models.Generation "Generated"
// @Success 200 {object} models.Generation "Replayed"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 402 {object} handlers.InsufficientXPResponse
// @Failure 409 {object} handlers.ErrorResponse "Generation already running"
// @Failure 413 {object} handlers.ErrorResponse
// @Failure 502 {object} handlers.ErrorResponse "Generation failed, XP refunded"
// @Security BearerAuth
// @Router /generations [post]
func NewCreateGenerationHandler(svc Generator, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		image, ok := readImage(w, r, maxBytes)
		if !ok {
			return
		}

		templateID, err := strconv.ParseInt(r.FormValue("template_id"), 10, 64)
		if err != nil || templateID <= 0 {
			writeError(w, http.StatusBadRequest, "invalid template_id")
			return
		}
		key := strings.TrimSpace(r.Header.Get(IdempotencyHeader))
		if len(key) > 128 {
			writeError(w, http.StatusBadRequest, "idempotency key too long")
			return
		}

		res, err := svc.Generate(r.Context(), services.GenerateInput{
			UserID:         userID,
			TemplateID:     templateID,
			ModelID:        strings.TrimSpace(r.FormValue("model_id")),
			IdempotencyKey: key,
			Image:          image,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		status := http.StatusCreated
		if res.Replayed {
			status = http.StatusOK
		}
		writeJSON(w, status, res.Generation)
	}
}

// NewListGenerationsHandler returns an HTTP handler listing the caller's generations.
// @Summary List generations
// @Tags generations
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} handlers.GenerationsResponse
// @Security BearerAuth
// @Router /generations [get]
func NewListGenerationsHandler(svc Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		list, err := svc.List(r.Context(), userID, queryInt(r, "limit", 20), queryInt(r, "offset", 0))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if list == nil {
			list = []models.Generation{}
		}
		writeJSON(w, http.StatusOK, GenerationsResponse{Generations: list})
	}
}

// NewGetGenerationHandler returns an HTTP handler for one of the caller's generations.
// @Summary Get generation
// @Tags generations
// @Produce json
// @Param id path string true "Generation ID"
// @Success 200 {object} models.Generation
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /generations/{id} [get]
func NewGetGenerationHandler(svc Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		gen, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, gen)
	}
}
