package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

const aiModelColumns = `id, name, xp_cost, is_active, is_default, created_at, updated_at`

// AIModelRepository persists the catalog of generation backends.
type AIModelRepository struct {
	base
}

func NewAIModelRepository(db *sqlx.DB, txGetter TxGetter) *AIModelRepository {
	return &AIModelRepository{base{db: db, txGetter: txGetter}}
}

// ListActive returns active models, the default first.
func (r *AIModelRepository) ListActive(ctx context.Context) ([]models.AIModel, error) {
	query := `SELECT ` + aiModelColumns + ` FROM ai_models WHERE is_active ORDER BY is_default DESC, xp_cost, id`

	list := []models.AIModel{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &list, query)
	logQuery(ctx, query, nil, len(list), err)
	if err != nil {
		return nil, fmt.Errorf("select ai models: %w", err)
	}
	return list, nil
}

func (r *AIModelRepository) getOne(ctx context.Context, query string, args ...any) (*models.AIModel, error) {
	var m models.AIModel
	err := sqlx.GetContext(ctx, r.executor(ctx), &m, query, args...)
	logQuery(ctx, query, args, m.ID, err)

	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select ai model: %w", err)
	}
	return &m, nil
}

// GetByID returns nil when the model does not exist.
func (r *AIModelRepository) GetByID(ctx context.Context, id string) (*models.AIModel, error) {
	return r.getOne(ctx, `SELECT `+aiModelColumns+` FROM ai_models WHERE id = $1`, id)
}

// GetDefault returns the active default model, or nil.
func (r *AIModelRepository) GetDefault(ctx context.Context) (*models.AIModel, error) {
	return r.getOne(ctx, `SELECT `+aiModelColumns+` FROM ai_models WHERE is_default AND is_active LIMIT 1`)
}

// ClearDefault unsets the default flag on every model except keepID.
func (r *AIModelRepository) ClearDefault(ctx context.Context, keepID string) error {
	query := `UPDATE ai_models SET is_default = FALSE, updated_at = NOW() WHERE is_default AND id <> $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, keepID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{keepID}, rowsAffected, err)
	if err != nil {
		return fmt.Errorf("clear default ai model: %w", err)
	}
	return nil
}

// Upsert inserts or replaces the model.
func (r *AIModelRepository) Upsert(ctx context.Context, m *models.AIModel) error {
	query := `
		INSERT INTO ai_models (id, name, xp_cost, is_active, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    xp_cost = EXCLUDED.xp_cost,
		    is_active = EXCLUDED.is_active,
		    is_default = EXCLUDED.is_default,
		    updated_at = NOW()
		RETURNING created_at, updated_at
	`
	args := []any{m.ID, m.Name, m.XPCost, m.IsActive, m.IsDefault}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&m.CreatedAt, &m.UpdatedAt)
	logQuery(ctx, query, args, m.ID, err)
	if err != nil {
		return fmt.Errorf("upsert ai model: %w", err)
	}
	return nil
}
