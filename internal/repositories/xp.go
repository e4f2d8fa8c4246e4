package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

// XPRepository mutates XP balances and appends the ledger.
type XPRepository struct {
	base
}

func NewXPRepository(db *sqlx.DB, txGetter TxGetter) *XPRepository {
	return &XPRepository{base{db: db, txGetter: txGetter}}
}

// Debit decrements the balance only if it covers amount.
// On ErrInsufficientBalance the returned balance is the current one.
func (r *XPRepository) Debit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error) {
	query := `
		UPDATE users SET xp = xp - $2, updated_at = NOW()
		WHERE id = $1 AND xp >= $2
		RETURNING xp
	`

	var balance int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID, amount)
	logQuery(ctx, query, []any{userID, amount}, balance, err)

	if err == nil {
		return balance, nil
	}
	if !noRows(err) {
		return 0, fmt.Errorf("debit xp: %w", err)
	}

	current, err := r.Balance(ctx, userID)
	if err != nil {
		return 0, err
	}
	return current, ErrInsufficientBalance
}

// Credit increments the balance.
func (r *XPRepository) Credit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error) {
	query := `
		UPDATE users SET xp = xp + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING xp
	`

	var balance int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID, amount)
	logQuery(ctx, query, []any{userID, amount}, balance, err)

	if err != nil {
		if noRows(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("credit xp: %w", err)
	}
	return balance, nil
}

// Balance returns the user's current XP.
func (r *XPRepository) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT xp FROM users WHERE id = $1`

	var balance int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID)
	logQuery(ctx, query, []any{userID}, balance, err)

	if err != nil {
		if noRows(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("select xp: %w", err)
	}
	return balance, nil
}

// AppendLedger records a balance change and fills the entry's id and timestamp.
func (r *XPRepository) AppendLedger(ctx context.Context, e *models.LedgerEntry) error {
	query := `
		INSERT INTO xp_ledger (user_id, delta, reason, ref_id, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	args := []any{e.UserID, e.Delta, e.Reason, e.RefID, e.BalanceAfter}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt)
	logQuery(ctx, query, args, e.ID, err)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListLedger returns the most recent entries first.
func (r *XPRepository) ListLedger(ctx context.Context, userID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	query := `
		SELECT id, user_id, delta, reason, ref_id, balance_after, created_at
		FROM xp_ledger
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`

	entries := []models.LedgerEntry{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &entries, query, userID, limit)
	logQuery(ctx, query, []any{userID, limit}, len(entries), err)
	if err != nil {
		return nil, fmt.Errorf("select ledger: %w", err)
	}
	return entries, nil
}
