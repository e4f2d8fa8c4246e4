package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported output resolutions
var Resolutions = []string{"1K", "2K", "4K"}

// Supported aspect ratios
var AspectRatios = []string{"1:1", "2:3", "3:2", "3:4", "4:3", "4:5", "5:4", "9:16", "16:9", "21:9"}

const (
	DefaultResolution  = "1K"
	DefaultAspectRatio = "1:1"
)

// UserSettings holds per-user generation preferences.
type UserSettings struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	ModelID     *string   `json:"model_id,omitempty" db:"model_id"`
	Resolution  string    `json:"resolution" db:"resolution"`
	AspectRatio string    `json:"aspect_ratio" db:"aspect_ratio"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// AIModel is a selectable generation backend.
type AIModel struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	XPCost    int64     `json:"xp_cost" db:"xp_cost"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	IsDefault bool      `json:"is_default" db:"is_default"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
