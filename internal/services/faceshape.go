package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-template-studio/internal/facematch"
	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

const faceShapePrompt = `Look at the face in this photo and answer with exactly one word naming its shape: ` +
	`oval, round, square, heart, oblong, diamond or triangle. Answer "unknown" if no single face is visible.`

//go:generate mockgen -source=faceshape.go -destination=faceshape_mock_test.go -package=services

// ImageDescriber answers a text prompt about an image.
type ImageDescriber interface {
	DescribeImage(ctx context.Context, model string, image []byte, mimeType, prompt string) (string, error)
}

// FaceShapeResult lists the templates that suit the detected face shape.
type FaceShapeResult struct {
	Shape     string            `json:"shape"`
	Templates []models.Template `json:"templates"`
}

// FaceShapeService recommends templates for a face photo.
type FaceShapeService struct {
	describer ImageDescriber
	templates TemplateStore
	table     facematch.Table
	model     string
	maxBytes  int64
}

func NewFaceShapeService(describer ImageDescriber, templates TemplateStore, table facematch.Table, model string, maxBytes int64) *FaceShapeService {
	return &FaceShapeService{
		describer: describer,
		templates: templates,
		table:     table,
		model:     model,
		maxBytes:  maxBytes,
	}
}

// Analyze detects the face shape in image and returns the matching active
// templates in display order.
func (s *FaceShapeService) Analyze(ctx context.Context, image []byte) (*FaceShapeResult, error) {
	contentType, err := DetectImageType(image, s.maxBytes)
	if err != nil {
		return nil, err
	}

	answer, err := s.describer.DescribeImage(ctx, s.model, image, contentType, faceShapePrompt)
	if err != nil {
		logger.FromContext(ctx).Errorw("face shape analysis failed", "error", err)
		return nil, errors.Join(ErrUpstream, err)
	}

	shape := facematch.Normalize(answer)
	if shape == "" {
		logger.FromContext(ctx).Infow("face shape not recognised", "answer", answer)
		return nil, ErrFaceNotRecognised
	}

	active, err := s.templates.List(ctx, true)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Template, 0, len(active))
	for _, t := range active {
		if !t.ComingSoon && s.table.Matches(t.ID, shape) {
			matched = append(matched, t)
		}
	}
	return &FaceShapeResult{Shape: shape, Templates: matched}, nil
}
