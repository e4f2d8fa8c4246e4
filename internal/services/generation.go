package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/facades"
	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/metrics"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

//go:generate mockgen -source=generation.go -destination=generation_mock_test.go -package=services

// GenerationStore persists generations.
type GenerationStore interface {
	CreatePending(ctx context.Context, g *models.Generation) (bool, error)
	GetByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*models.Generation, error)
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*models.Generation, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Generation, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, originalURL, generatedURL string) error
	MarkRefunded(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]models.Generation, error)
}

// InFlightLock allows one running generation per user.
type InFlightLock interface {
	Acquire(ctx context.Context, userID uuid.UUID) (bool, error)
	Release(ctx context.Context, userID uuid.UUID) error
}

// ImageGenerator renders an image from a photo and a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, model string, image []byte, mimeType, prompt string, opts facades.ImageOptions) ([]byte, string, error)
}

// ImageStore saves image bytes and returns a public URL.
type ImageStore interface {
	Save(ctx context.Context, kind string, data []byte, contentType string) (string, error)
}

// GenerateInput is one generation request.
type GenerateInput struct {
	UserID         uuid.UUID
	TemplateID     int64
	ModelID        string
	IdempotencyKey string
	Image          []byte
}

// GenerateResult is the outcome of Generate. Replayed is true when the
// idempotency key matched an earlier request and nothing was charged.
type GenerateResult struct {
	Generation *models.Generation
	Replayed   bool
}

// GenerationService runs debit-then-generate with compensation on failure.
type GenerationService struct {
	tx        Transactor
	xp        XPLedger
	store     GenerationStore
	templates TemplateStore
	catalog   ModelCatalog
	settings  SettingsStore
	lock      InFlightLock
	generator ImageGenerator
	images    ImageStore
	maxBytes  int64
	timeout   time.Duration
}

func NewGenerationService(
	tx Transactor,
	xp XPLedger,
	store GenerationStore,
	templates TemplateStore,
	catalog ModelCatalog,
	settings SettingsStore,
	lock InFlightLock,
	generator ImageGenerator,
	images ImageStore,
	maxBytes int64,
	timeout time.Duration,
) *GenerationService {
	return &GenerationService{
		tx:        tx,
		xp:        xp,
		store:     store,
		templates: templates,
		catalog:   catalog,
		settings:  settings,
		lock:      lock,
		generator: generator,
		images:    images,
		maxBytes:  maxBytes,
		timeout:   timeout,
	}
}

// Generate validates the request, reserves XP together with a pending
// generation, calls the image API and either completes or refunds.
func (s *GenerationService) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	log := logger.FromContext(ctx)

	contentType, err := DetectImageType(in.Image, s.maxBytes)
	if err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" {
		existing, err := s.store.GetByIdempotencyKey(ctx, in.UserID, in.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &GenerateResult{Generation: existing, Replayed: true}, nil
		}
	}

	tpl, err := s.templates.GetByID(ctx, in.TemplateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, ErrTemplateNotFound
	}
	if !tpl.Generatable() {
		return nil, ErrTemplateUnavailable
	}

	model, opts, err := s.resolveModel(ctx, in.UserID, in.ModelID)
	if err != nil {
		return nil, err
	}

	acquired, err := s.lock.Acquire(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrGenerationInProgress
	}
	defer func() {
		if err := s.lock.Release(context.WithoutCancel(ctx), in.UserID); err != nil {
			log.Errorw("failed to release generation lock", "userID", in.UserID, "error", err)
		}
	}()

	templateID := tpl.ID
	gen := &models.Generation{
		UserID:     in.UserID,
		TemplateID: &templateID,
		XPCost:     model.XPCost,
		Prompt:     *tpl.Prompt,
		ModelName:  model.ID,
	}
	if in.IdempotencyKey != "" {
		key := in.IdempotencyKey
		gen.IdempotencyKey = &key
	}

	replayed, err := s.reserve(ctx, gen)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &GenerateResult{Generation: replayed, Replayed: true}, nil
	}

	originalURL, err := s.images.Save(ctx, facades.KindOriginal, in.Image, contentType)
	if err != nil {
		return nil, s.fail(ctx, gen, "failed to store upload", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	start := time.Now()
	output, outputType, err := s.generator.GenerateImage(genCtx, model.ID, in.Image, contentType, gen.Prompt, opts)
	cancel()
	metrics.ObserveUpstream(time.Since(start))
	if err != nil {
		return nil, s.fail(ctx, gen, "image generation failed", err)
	}

	generatedURL, err := s.images.Save(ctx, facades.KindGenerated, output, outputType)
	if err != nil {
		return nil, s.fail(ctx, gen, "failed to store result", err)
	}

	// A failure here leaves the row pending and the reconciler refunds it.
	if err := s.store.MarkCompleted(ctx, gen.ID, originalURL, generatedURL); err != nil {
		log.Errorw("failed to complete generation", "generationID", gen.ID, "error", err)
		return nil, err
	}

	gen.Status = models.GenerationCompleted
	gen.OriginalURL = &originalURL
	gen.GeneratedURL = &generatedURL
	metrics.ObserveGeneration(models.GenerationCompleted)
	log.Infow("generation completed", "generationID", gen.ID, "userID", in.UserID, "model", model.ID, "cost", model.XPCost)

	return &GenerateResult{Generation: gen}, nil
}

func (s *GenerationService) resolveModel(ctx context.Context, userID uuid.UUID, requested string) (*models.AIModel, facades.ImageOptions, error) {
	opts := facades.ImageOptions{AspectRatio: models.DefaultAspectRatio, Resolution: models.DefaultResolution}

	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, opts, err
	}
	if settings != nil {
		opts.AspectRatio = settings.AspectRatio
		opts.Resolution = settings.Resolution
		if requested == "" && settings.ModelID != nil {
			requested = *settings.ModelID
		}
	}

	var model *models.AIModel
	if requested != "" {
		model, err = s.catalog.GetByID(ctx, requested)
	} else {
		model, err = s.catalog.GetDefault(ctx)
	}
	if err != nil {
		return nil, opts, err
	}
	if model == nil || !model.IsActive {
		return nil, opts, ErrModelNotFound
	}
	return model, opts, nil
}

// reserve inserts the pending row and debits in one transaction. It returns
// the earlier generation when the idempotency key was already used.
func (s *GenerationService) reserve(ctx context.Context, gen *models.Generation) (*models.Generation, error) {
	var (
		entry    *models.LedgerEntry
		replayed *models.Generation
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.store.CreatePending(ctx, gen)
		if err != nil {
			return err
		}
		if !created {
			if gen.IdempotencyKey == nil {
				return errors.New("pending generation was not inserted")
			}
			replayed, err = s.store.GetByIdempotencyKey(ctx, gen.UserID, *gen.IdempotencyKey)
			return err
		}

		entry, err = s.xp.Debit(ctx, gen.UserID, gen.XPCost, models.ReasonGeneration, gen.ID.String())
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientXP) {
			metrics.ObserveGeneration("insufficient_xp")
		}
		return nil, err
	}

	if entry != nil {
		metrics.ObserveXP(models.ReasonGeneration, entry.Delta)
	}
	s.xp.Publish(ctx, entry)
	return replayed, nil
}

// fail refunds gen and returns the error reported to the caller.
func (s *GenerationService) fail(ctx context.Context, gen *models.Generation, msg string, cause error) error {
	reason := fmt.Sprintf("%s: %v", msg, cause)
	logger.FromContext(ctx).Errorw(msg, "generationID", gen.ID, "userID", gen.UserID, "error", cause)

	if err := s.Refund(context.WithoutCancel(ctx), gen, reason); err != nil {
		logger.FromContext(ctx).Errorw("failed to refund generation", "generationID", gen.ID, "error", err)
		return fmt.Errorf("%w: %s", ErrGenerationFailed, msg)
	}
	return fmt.Errorf("%w: %s; %d xp refunded", ErrGenerationFailed, msg, gen.XPCost)
}

// Refund credits the cost back if gen is still pending. It is safe to call
// more than once.
func (s *GenerationService) Refund(ctx context.Context, gen *models.Generation, reason string) error {
	var (
		entry        *models.LedgerEntry
		transitioned bool
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		transitioned, err = s.store.MarkRefunded(ctx, gen.ID, reason)
		if err != nil || !transitioned {
			return err
		}
		entry, err = s.xp.Credit(ctx, gen.UserID, gen.XPCost, models.ReasonGenerationRefund, gen.ID.String())
		return err
	})
	if err != nil {
		return err
	}
	if !transitioned {
		return nil
	}

	gen.Status = models.GenerationRefunded
	gen.ErrorMessage = &reason
	metrics.ObserveGeneration(models.GenerationRefunded)
	if entry != nil {
		metrics.ObserveXP(models.ReasonGenerationRefund, entry.Delta)
	}
	s.xp.Publish(ctx, entry)
	return nil
}

// RefundStale refunds generations left pending for longer than olderThan.
func (s *GenerationService) RefundStale(ctx context.Context, olderThan time.Duration) (int, error) {
	stale, err := s.store.ListStalePending(ctx, time.Now().Add(-olderThan), 100)
	if err != nil {
		return 0, err
	}

	refunded := 0
	for i := range stale {
		if err := s.Refund(ctx, &stale[i], "generation did not complete in time"); err != nil {
			logger.FromContext(ctx).Errorw("failed to refund stale generation", "generationID", stale[i].ID, "error", err)
			continue
		}
		refunded++
	}
	return refunded, nil
}

// List returns the user's generation history, newest first.
func (s *GenerationService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Generation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListByUser(ctx, userID, limit, offset)
}

// Get returns one of the user's generations.
func (s *GenerationService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Generation, error) {
	gen, err := s.store.GetForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, ErrGenerationNotFound
	}
	return gen, nil
}
