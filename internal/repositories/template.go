package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

const templateColumns = `id, slug, title, description, image_url, prompt, is_active, coming_soon,
	display_order, tags, unlock_cost, created_at, updated_at`

// TemplateRepository persists templates.
type TemplateRepository struct {
	base
}

func NewTemplateRepository(db *sqlx.DB, txGetter TxGetter) *TemplateRepository {
	return &TemplateRepository{base{db: db, txGetter: txGetter}}
}

// List returns templates in display order. activeOnly hides inactive ones.
func (r *TemplateRepository) List(ctx context.Context, activeOnly bool) ([]models.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates
		WHERE (NOT $1::BOOLEAN OR is_active)
		ORDER BY display_order, id`

	templates := []models.Template{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &templates, query, activeOnly)
	logQuery(ctx, query, []any{activeOnly}, len(templates), err)
	if err != nil {
		return nil, fmt.Errorf("select templates: %w", err)
	}
	return templates, nil
}

func (r *TemplateRepository) getOne(ctx context.Context, query string, arg any) (*models.Template, error) {
	var t models.Template
	err := sqlx.GetContext(ctx, r.executor(ctx), &t, query, arg)
	logQuery(ctx, query, []any{arg}, t.ID, err)

	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select template: %w", err)
	}
	return &t, nil
}

// GetByID returns nil when the template does not exist.
func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*models.Template, error) {
	return r.getOne(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, id)
}

// GetBySlug returns nil when no template has the slug.
func (r *TemplateRepository) GetBySlug(ctx context.Context, slug string) (*models.Template, error) {
	return r.getOne(ctx, `SELECT `+templateColumns+` FROM templates WHERE slug = $1`, slug)
}

// Create inserts the template and fills its generated fields.
func (r *TemplateRepository) Create(ctx context.Context, t *models.Template) error {
	query := `
		INSERT INTO templates (slug, title, description, image_url, prompt, is_active, coming_soon,
			display_order, tags, unlock_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{t.Slug, t.Title, t.Description, t.ImageURL, t.Prompt, t.IsActive, t.ComingSoon,
		t.DisplayOrder, t.Tags, t.UnlockCost}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	logQuery(ctx, query, args, t.ID, err)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// Update overwrites every editable column of the template.
func (r *TemplateRepository) Update(ctx context.Context, t *models.Template) error {
	query := `
		UPDATE templates
		SET slug = $2, title = $3, description = $4, image_url = $5, prompt = $6, is_active = $7,
			coming_soon = $8, display_order = $9, tags = $10, unlock_cost = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{t.ID, t.Slug, t.Title, t.Description, t.ImageURL, t.Prompt, t.IsActive, t.ComingSoon,
		t.DisplayOrder, t.Tags, t.UnlockCost}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&t.UpdatedAt)
	logQuery(ctx, query, args, t.UpdatedAt, err)

	if err != nil {
		switch {
		case noRows(err):
			return ErrNotFound
		case isUniqueViolation(err):
			return ErrConflict
		}
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// Delete removes the template.
func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM templates WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{id}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
