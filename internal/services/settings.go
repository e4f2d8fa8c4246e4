package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

//go:generate mockgen -source=settings.go -destination=settings_mock_test.go -package=services

// ModelCatalog reads AI models.
type ModelCatalog interface {
	ListActive(ctx context.Context) ([]models.AIModel, error)
	GetByID(ctx context.Context, id string) (*models.AIModel, error)
	GetDefault(ctx context.Context) (*models.AIModel, error)
}

// ModelWriter edits AI models.
type ModelWriter interface {
	ClearDefault(ctx context.Context, keepID string) error
	Upsert(ctx context.Context, model *models.AIModel) error
}

// SettingsStore persists per-user generation settings.
type SettingsStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
	Upsert(ctx context.Context, s *models.UserSettings) error
}

// SettingsService manages user settings and the model catalog.
type SettingsService struct {
	tx       Transactor
	settings SettingsStore
	catalog  ModelCatalog
	writer   ModelWriter
}

func NewSettingsService(tx Transactor, settings SettingsStore, catalog ModelCatalog, writer ModelWriter) *SettingsService {
	return &SettingsService{tx: tx, settings: settings, catalog: catalog, writer: writer}
}

// Get returns the user's settings, or the defaults if none were saved.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	current, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = &models.UserSettings{
			UserID:      userID,
			Resolution:  models.DefaultResolution,
			AspectRatio: models.DefaultAspectRatio,
		}
	}
	return current, nil
}

// Update validates and stores the user's settings. A nil modelID means
// "use the default model".
func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, modelID *string, resolution, aspectRatio string) (*models.UserSettings, error) {
	if resolution == "" {
		resolution = models.DefaultResolution
	}
	if aspectRatio == "" {
		aspectRatio = models.DefaultAspectRatio
	}
	if !slices.Contains(models.Resolutions, resolution) {
		return nil, fmt.Errorf("%w: resolution must be one of %s", ErrInvalidInput, strings.Join(models.Resolutions, ", "))
	}
	if !slices.Contains(models.AspectRatios, aspectRatio) {
		return nil, fmt.Errorf("%w: unsupported aspect ratio %q", ErrInvalidInput, aspectRatio)
	}

	if modelID != nil && *modelID == "" {
		modelID = nil
	}
	if modelID != nil {
		m, err := s.catalog.GetByID(ctx, *modelID)
		if err != nil {
			return nil, err
		}
		if m == nil || !m.IsActive {
			return nil, ErrModelNotFound
		}
	}

	updated := &models.UserSettings{
		UserID:      userID,
		ModelID:     modelID,
		Resolution:  resolution,
		AspectRatio: aspectRatio,
	}
	if err := s.settings.Upsert(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ListModels returns the active models.
func (s *SettingsService) ListModels(ctx context.Context) ([]models.AIModel, error) {
	return s.catalog.ListActive(ctx)
}

// UpsertModel creates or replaces a model. Marking it default clears the
// flag on every other model in the same transaction.
func (s *SettingsService) UpsertModel(ctx context.Context, m *models.AIModel) error {
	m.ID = strings.TrimSpace(m.ID)
	m.Name = strings.TrimSpace(m.Name)
	if m.ID == "" || m.Name == "" {
		return fmt.Errorf("%w: model id and name are required", ErrInvalidInput)
	}
	if m.XPCost < 0 {
		return fmt.Errorf("%w: xp cost must not be negative", ErrInvalidInput)
	}
	if m.IsDefault && !m.IsActive {
		return fmt.Errorf("%w: default model must be active", ErrInvalidInput)
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if m.IsDefault {
			if err := s.writer.ClearDefault(ctx, m.ID); err != nil {
				return err
			}
		}
		return s.writer.Upsert(ctx, m)
	})
}
