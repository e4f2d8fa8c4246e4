package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-template-studio/internal/services"
)

//go:generate mockgen -source=faceshape.go -destination=faceshape_mock_test.go -package=handlers

// FaceShapeAnalyzer classifies a face photo and recommends templates.
type FaceShapeAnalyzer interface {
	Analyze(ctx context.Context, image []byte) (*services.FaceShapeResult, error)
}

// NewFaceShapeHandler returns an HTTP handler for face-shape recommendations.
// @Summary Face-shape recommendations
// @Tags templates
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "PNG, JPEG or WebP image"
// @Success 200 {object} services.FaceShapeResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid image or no face recognised"
// @Failure 502 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /face-shape [post]
func NewFaceShapeHandler(svc FaceShapeAnalyzer, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUserID(w, r); !ok {
			return
		}
		image, ok := readImage(w, r, maxBytes)
		if !ok {
			return
		}
		res, err := svc.Analyze(r.Context(), image)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
