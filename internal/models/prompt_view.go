package models

import (
	"time"

	"github.com/google/uuid"
)

// PromptView records that a user unlocked a template's prompt.
type PromptView struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	TemplateID int64     `json:"template_id" db:"template_id"`
	XPCharged  int64     `json:"xp_charged" db:"xp_charged"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
