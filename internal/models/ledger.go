package models

import (
	"time"

	"github.com/google/uuid"
)

// Ledger reasons
const (
	ReasonGeneration       = "generation"
	ReasonGenerationRefund = "generation_refund"
	ReasonPromptUnlock     = "prompt_unlock"
	ReasonPurchase         = "purchase"
	ReasonSignupBonus      = "signup_bonus"
)

// LedgerEntry is one append-only change of a user's XP balance.
type LedgerEntry struct {
	ID           int64     `json:"id" db:"id"`                       // Sequence id
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Owner of the balance
	Delta        int64     `json:"delta" db:"delta"`                 // Signed change
	Reason       string    `json:"reason" db:"reason"`               // One of the Reason* constants
	RefID        *string   `json:"ref_id,omitempty" db:"ref_id"`     // Generation, template or order id
	BalanceAfter int64     `json:"balance_after" db:"balance_after"` // Balance once the change applied
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
