package models

import (
	"time"

	"github.com/google/uuid"
)

// Generation statuses
const (
	GenerationPending   = "pending"
	GenerationCompleted = "completed"
	GenerationFailed    = "failed"
	GenerationRefunded  = "refunded"
)

// Generation is one invocation of the image API on behalf of a user.
type Generation struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	TemplateID     *int64    `json:"template_id,omitempty" db:"template_id"`
	OriginalURL    *string   `json:"original_url,omitempty" db:"original_url"`
	GeneratedURL   *string   `json:"generated_url,omitempty" db:"generated_url"`
	XPCost         int64     `json:"xp_cost" db:"xp_cost"`
	Prompt         string    `json:"-" db:"prompt"`
	ModelName      string    `json:"model_name" db:"model_name"`
	Status         string    `json:"status" db:"status"`
	ErrorMessage   *string   `json:"error_message,omitempty" db:"error_message"`
	IdempotencyKey *string   `json:"idempotency_key,omitempty" db:"idempotency_key"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
