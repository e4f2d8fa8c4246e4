package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PromptViewRepository records which users unlocked which template prompts.
type PromptViewRepository struct {
	base
}

func NewPromptViewRepository(db *sqlx.DB, txGetter TxGetter) *PromptViewRepository {
	return &PromptViewRepository{base{db: db, txGetter: txGetter}}
}

// Insert records the unlock. It returns false when the pair was already recorded.
func (r *PromptViewRepository) Insert(ctx context.Context, userID uuid.UUID, templateID, xpCharged int64) (bool, error) {
	query := `
		INSERT INTO template_prompt_views (user_id, template_id, xp_charged, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, template_id) DO NOTHING
	`
	args := []any{userID, templateID, xpCharged}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return false, fmt.Errorf("insert prompt view: %w", err)
	}
	return rowsAffected == 1, nil
}

// Exists reports whether the user already unlocked the template.
func (r *PromptViewRepository) Exists(ctx context.Context, userID uuid.UUID, templateID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM template_prompt_views WHERE user_id = $1 AND template_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &exists, query, userID, templateID)
	logQuery(ctx, query, []any{userID, templateID}, exists, err)
	if err != nil {
		return false, fmt.Errorf("check prompt view: %w", err)
	}
	return exists, nil
}
