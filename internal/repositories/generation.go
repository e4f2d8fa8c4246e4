package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

const generationColumns = `id, user_id, template_id, original_url, generated_url, xp_cost, prompt,
	model_name, status, error_message, idempotency_key, created_at, updated_at`

// GenerationRepository persists generations and their status transitions.
type GenerationRepository struct {
	base
}

func NewGenerationRepository(db *sqlx.DB, txGetter TxGetter) *GenerationRepository {
	return &GenerationRepository{base{db: db, txGetter: txGetter}}
}

// CreatePending inserts a pending generation. It returns false without
// inserting when the user already has a generation with the same idempotency key.
func (r *GenerationRepository) CreatePending(ctx context.Context, g *models.Generation) (bool, error) {
	query := `
		INSERT INTO generations (id, user_id, template_id, xp_cost, prompt, model_name, status,
			idempotency_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7, NOW(), NOW())
		ON CONFLICT (user_id, idempotency_key) DO NOTHING
		RETURNING created_at, updated_at
	`
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	args := []any{g.ID, g.UserID, g.TemplateID, g.XPCost, g.Prompt, g.ModelName, g.IdempotencyKey}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&g.CreatedAt, &g.UpdatedAt)
	logQuery(ctx, query, args, g.ID, err)

	if err != nil {
		if noRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert generation: %w", err)
	}
	g.Status = models.GenerationPending
	return true, nil
}

func (r *GenerationRepository) getOne(ctx context.Context, query string, args ...any) (*models.Generation, error) {
	var g models.Generation
	err := sqlx.GetContext(ctx, r.executor(ctx), &g, query, args...)
	logQuery(ctx, query, args, g.ID, err)

	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select generation: %w", err)
	}
	return &g, nil
}

// GetByIdempotencyKey returns nil when the user has no generation with key.
func (r *GenerationRepository) GetByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*models.Generation, error) {
	return r.getOne(ctx, `SELECT `+generationColumns+` FROM generations
		WHERE user_id = $1 AND idempotency_key = $2`, userID, key)
}

// GetForUser returns the generation only if userID owns it.
func (r *GenerationRepository) GetForUser(ctx context.Context, userID, id uuid.UUID) (*models.Generation, error) {
	return r.getOne(ctx, `SELECT `+generationColumns+` FROM generations
		WHERE id = $1 AND user_id = $2`, id, userID)
}

// ListByUser returns the user's generations, newest first.
func (r *GenerationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Generation, error) {
	query := `SELECT ` + generationColumns + ` FROM generations
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	list := []models.Generation{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &list, query, userID, limit, offset)
	logQuery(ctx, query, []any{userID, limit, offset}, len(list), err)
	if err != nil {
		return nil, fmt.Errorf("select generations: %w", err)
	}
	return list, nil
}

// MarkCompleted moves a pending generation to completed with its image URLs.
func (r *GenerationRepository) MarkCompleted(ctx context.Context, id uuid.UUID, originalURL, generatedURL string) error {
	query := `
		UPDATE generations
		SET status = 'completed', original_url = $2, generated_url = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`
	args := []any{id, originalURL, generatedURL}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("complete generation: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkRefunded moves a pending generation to refunded. It returns false
// when the generation is no longer pending so callers refund at most once.
func (r *GenerationRepository) MarkRefunded(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	query := `
		UPDATE generations
		SET status = 'refunded', error_message = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`
	args := []any{id, reason}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return false, fmt.Errorf("refund generation: %w", err)
	}
	return rowsAffected > 0, nil
}

// ListStalePending returns generations still pending that were created before cutoff.
func (r *GenerationRepository) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]models.Generation, error) {
	query := `SELECT ` + generationColumns + ` FROM generations
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at
		LIMIT $2`

	list := []models.Generation{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &list, query, cutoff, limit)
	logQuery(ctx, query, []any{cutoff, limit}, len(list), err)
	if err != nil {
		return nil, fmt.Errorf("select stale generations: %w", err)
	}
	return list, nil
}
