package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses
const (
	OrderCreated = "created"
	OrderPaid    = "paid"
	OrderFailed  = "failed"
	OrderExpired = "expired"
)

// XPPackage is a purchasable bundle of XP.
type XPPackage struct {
	Code     string `json:"code"`
	XP       int64  `json:"xp"`
	Price    int64  `json:"price"` // Minor currency units
	Currency string `json:"currency"`
}

// Order is an XP purchase tracked against the payment gateway.
type Order struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	PackageCode    string    `json:"package_code" db:"package_code"`
	GatewayOrderID string    `json:"gateway_order_id" db:"gateway_order_id"`
	Amount         int64     `json:"amount" db:"amount"`
	Currency       string    `json:"currency" db:"currency"`
	XP             int64     `json:"xp" db:"xp"`
	Status         string    `json:"status" db:"status"`
	PaymentID      *string   `json:"payment_id,omitempty" db:"payment_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Settleable reports whether a captured payment may still credit the order.
// Expired orders stay settleable so a late capture is not lost.
func (o *Order) Settleable() bool {
	return o.Status == OrderCreated || o.Status == OrderExpired
}
