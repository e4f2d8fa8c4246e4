package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/metrics"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
	"github.com/sbilibin2017/gw-template-studio/internal/repositories"
	"github.com/sbilibin2017/gw-template-studio/internal/slug"
)

//go:generate mockgen -source=template.go -destination=template_mock_test.go -package=services

// TemplateStore persists templates.
type TemplateStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.Template, error)
	GetByID(ctx context.Context, id int64) (*models.Template, error)
	GetBySlug(ctx context.Context, slug string) (*models.Template, error)
	Create(ctx context.Context, t *models.Template) error
	Update(ctx context.Context, t *models.Template) error
	Delete(ctx context.Context, id int64) error
}

// PromptViewStore records which prompts a user has unlocked.
type PromptViewStore interface {
	Insert(ctx context.Context, userID uuid.UUID, templateID, xpCharged int64) (bool, error)
	Exists(ctx context.Context, userID uuid.UUID, templateID int64) (bool, error)
}

// TemplateInput is the admin-editable part of a template.
type TemplateInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
	Prompt       *string `json:"prompt"`
	IsActive     bool    `json:"is_active"`
	ComingSoon   bool    `json:"coming_soon"`
	DisplayOrder int     `json:"display_order"`
	Tags         string  `json:"tags"`
	UnlockCost   int64   `json:"unlock_cost"`
}

// UnlockResult is returned by UnlockPrompt.
type UnlockResult struct {
	Prompt          string `json:"prompt"`
	Charged         int64  `json:"charged"`
	AlreadyUnlocked bool   `json:"already_unlocked"`
}

// TemplateService serves the catalog and prompt unlocks.
type TemplateService struct {
	tx        Transactor
	xp        XPLedger
	templates TemplateStore
	views     PromptViewStore
}

func NewTemplateService(tx Transactor, xp XPLedger, templates TemplateStore, views PromptViewStore) *TemplateService {
	return &TemplateService{tx: tx, xp: xp, templates: templates, views: views}
}

// ListActive returns active templates in display order, optionally only
// those tagged with tag.
func (s *TemplateService) ListActive(ctx context.Context, tag string) ([]models.Template, error) {
	all, err := s.templates.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(tag) == "" {
		return all, nil
	}

	filtered := make([]models.Template, 0, len(all))
	for _, t := range all {
		if t.HasTag(tag) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// GetBySlug normalises raw before the lookup so any spelling of a title
// resolves to the same template.
func (s *TemplateService) GetBySlug(ctx context.Context, raw string) (*models.Template, error) {
	key := slug.Slugify(raw)
	if key == "" {
		return nil, ErrTemplateNotFound
	}

	t, err := s.templates.GetBySlug(ctx, key)
	if err != nil {
		return nil, err
	}
	if t == nil || !t.IsActive {
		return nil, ErrTemplateNotFound
	}
	return t, nil
}

// IsUnlocked reports whether the user already paid for the template prompt.
func (s *TemplateService) IsUnlocked(ctx context.Context, userID uuid.UUID, templateID int64) (bool, error) {
	return s.views.Exists(ctx, userID, templateID)
}

// UnlockPrompt reveals the template prompt, charging its unlock cost the
// first time a user asks for it.
func (s *TemplateService) UnlockPrompt(ctx context.Context, userID uuid.UUID, templateID int64) (*UnlockResult, error) {
	t, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if t == nil || !t.IsActive {
		return nil, ErrTemplateNotFound
	}
	if !t.HasPrompt() {
		return nil, ErrTemplateUnavailable
	}

	var (
		entry    *models.LedgerEntry
		inserted bool
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		inserted, err = s.views.Insert(ctx, userID, t.ID, t.UnlockCost)
		if err != nil || !inserted {
			return err
		}
		entry, err = s.xp.Debit(ctx, userID, t.UnlockCost, models.ReasonPromptUnlock, fmt.Sprint(t.ID))
		return err
	})
	if err != nil {
		return nil, err
	}

	res := &UnlockResult{Prompt: *t.Prompt, AlreadyUnlocked: !inserted}
	if entry != nil {
		res.Charged = -entry.Delta
		metrics.ObserveXP(models.ReasonPromptUnlock, entry.Delta)
		s.xp.Publish(ctx, entry)
	}

	logger.FromContext(ctx).Infow("prompt unlocked", "userID", userID, "templateID", t.ID, "charged", res.Charged)
	return res, nil
}

// ListAll returns every template for the admin view.
func (s *TemplateService) ListAll(ctx context.Context) ([]models.Template, error) {
	return s.templates.List(ctx, false)
}

// Create adds a template whose slug is derived from its title.
func (s *TemplateService) Create(ctx context.Context, in TemplateInput) (*models.Template, error) {
	t := &models.Template{}
	if err := applyTemplateInput(t, in); err != nil {
		return nil, err
	}

	if err := s.templates.Create(ctx, t); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrTemplateExists
		}
		return nil, err
	}
	return t, nil
}

// Update replaces the editable fields of template id.
func (s *TemplateService) Update(ctx context.Context, id int64, in TemplateInput) (*models.Template, error) {
	t, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTemplateNotFound
	}
	if err := applyTemplateInput(t, in); err != nil {
		return nil, err
	}

	if err := s.templates.Update(ctx, t); err != nil {
		switch {
		case errors.Is(err, repositories.ErrConflict):
			return nil, ErrTemplateExists
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return t, nil
}

// Delete removes template id.
func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	err := s.templates.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrTemplateNotFound
	}
	return err
}

func applyTemplateInput(t *models.Template, in TemplateInput) error {
	title := strings.TrimSpace(in.Title)
	key := slug.Slugify(title)
	if key == "" {
		return fmt.Errorf("%w: title must contain letters or digits", ErrInvalidInput)
	}
	if in.UnlockCost < 0 {
		return fmt.Errorf("%w: unlock cost must not be negative", ErrInvalidInput)
	}

	t.Title = title
	t.Slug = key
	t.Description = in.Description
	t.ImageURL = in.ImageURL
	t.Prompt = in.Prompt
	t.IsActive = in.IsActive
	t.ComingSoon = in.ComingSoon
	t.DisplayOrder = in.DisplayOrder
	t.Tags = in.Tags
	t.UnlockCost = in.UnlockCost
	return nil
}
