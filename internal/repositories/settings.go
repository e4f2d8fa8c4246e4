package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

// SettingsRepository persists per-user generation preferences.
type SettingsRepository struct {
	base
}

func NewSettingsRepository(db *sqlx.DB, txGetter TxGetter) *SettingsRepository {
	return &SettingsRepository{base{db: db, txGetter: txGetter}}
}

// Get returns nil when the user never saved settings.
func (r *SettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	query := `
		SELECT user_id, model_id, resolution, aspect_ratio, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var s models.UserSettings
	err := sqlx.GetContext(ctx, r.executor(ctx), &s, query, userID)
	logQuery(ctx, query, []any{userID}, s, err)

	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user settings: %w", err)
	}
	return &s, nil
}

// Upsert creates or replaces the user's settings.
func (r *SettingsRepository) Upsert(ctx context.Context, s *models.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, model_id, resolution, aspect_ratio, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET model_id = EXCLUDED.model_id,
		    resolution = EXCLUDED.resolution,
		    aspect_ratio = EXCLUDED.aspect_ratio,
		    updated_at = NOW()
		RETURNING updated_at
	`
	args := []any{s.UserID, s.ModelID, s.Resolution, s.AspectRatio}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&s.UpdatedAt)
	logQuery(ctx, query, args, s.UpdatedAt, err)
	if err != nil {
		return fmt.Errorf("upsert user settings: %w", err)
	}
	return nil
}
