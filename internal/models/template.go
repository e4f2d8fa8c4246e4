package models

import (
	"strings"
	"time"
)

// Template is a catalog entry pairing a reference image with a stored AI prompt.
type Template struct {
	ID           int64     `json:"id" db:"id"`
	Slug         string    `json:"slug" db:"slug"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	Prompt       *string   `json:"-" db:"prompt"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	ComingSoon   bool      `json:"coming_soon" db:"coming_soon"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	Tags         string    `json:"tags" db:"tags"`
	UnlockCost   int64     `json:"unlock_cost" db:"unlock_cost"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// HasPrompt reports whether the template carries a non-empty prompt.
func (t *Template) HasPrompt() bool {
	return t.Prompt != nil && strings.TrimSpace(*t.Prompt) != ""
}

// Generatable reports whether users can run a generation with the template.
func (t *Template) Generatable() bool {
	return t.IsActive && !t.ComingSoon && t.HasPrompt()
}

// TagList splits the comma separated tags, trimmed and lowercased.
func (t *Template) TagList() []string {
	var tags []string
	for _, tag := range strings.Split(t.Tags, ",") {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HasTag reports whether tag is one of the template's tags, case-insensitively.
func (t *Template) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, v := range t.TagList() {
		if v == tag {
			return true
		}
	}
	return false
}
