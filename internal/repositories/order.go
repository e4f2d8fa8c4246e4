package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

const orderColumns = `id, user_id, package_code, gateway_order_id, amount, currency, xp, status,
	payment_id, created_at, updated_at`

// OrderRepository persists XP purchase orders.
type OrderRepository struct {
	base
}

func NewOrderRepository(db *sqlx.DB, txGetter TxGetter) *OrderRepository {
	return &OrderRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts a created order and fills its generated fields.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	query := `
		INSERT INTO orders (user_id, package_code, gateway_order_id, amount, currency, xp, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'created', NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{o.UserID, o.PackageCode, o.GatewayOrderID, o.Amount, o.Currency, o.XP}

	err := r.executor(ctx).QueryRowxContext(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	logQuery(ctx, query, args, o.ID, err)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert order: %w", err)
	}
	o.Status = models.OrderCreated
	return nil
}

// GetByGatewayOrderID returns nil when the order is unknown.
func (r *OrderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE gateway_order_id = $1`

	var o models.Order
	err := sqlx.GetContext(ctx, r.executor(ctx), &o, query, gatewayOrderID)
	logQuery(ctx, query, []any{gatewayOrderID}, o.ID, err)

	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &o, nil
}

// MarkPaid transitions a created or expired order to paid and returns it.
// It returns nil when the order is unknown or was already transitioned.
func (r *OrderRepository) MarkPaid(ctx context.Context, gatewayOrderID, paymentID string) (*models.Order, error) {
	query := `
		UPDATE orders
		SET status = 'paid', payment_id = $2, updated_at = NOW()
		WHERE gateway_order_id = $1 AND status IN ('created', 'expired')
		RETURNING ` + orderColumns
	args := []any{gatewayOrderID, paymentID}

	var o models.Order
	err := sqlx.GetContext(ctx, r.executor(ctx), &o, query, args...)
	logQuery(ctx, query, args, o.ID, err)

	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("mark order paid: %w", err)
	}
	return &o, nil
}

// ExpireCreatedBefore marks unpaid orders older than cutoff as expired.
func (r *OrderRepository) ExpireCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE orders SET status = 'expired', updated_at = NOW()
		WHERE status = 'created' AND created_at < $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, cutoff)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{cutoff}, rowsAffected, err)

	if err != nil {
		return 0, fmt.Errorf("expire orders: %w", err)
	}
	return rowsAffected, nil
}
