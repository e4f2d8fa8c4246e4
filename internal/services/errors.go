package services

import (
	"errors"
	"fmt"
)

// Error variables
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidOAuthState  = errors.New("invalid oauth state")

	ErrInsufficientXP = errors.New("insufficient xp")

	ErrTemplateNotFound    = errors.New("template not found")
	ErrTemplateUnavailable = errors.New("template is not available for generation")
	ErrTemplateExists      = errors.New("template with this slug already exists")
	ErrModelNotFound       = errors.New("model not found or inactive")

	ErrInvalidImage         = errors.New("unsupported or empty image")
	ErrImageTooLarge        = errors.New("image is too large")
	ErrGenerationInProgress = errors.New("another generation is in progress")
	ErrGenerationNotFound   = errors.New("generation not found")
	ErrGenerationFailed     = errors.New("generation failed")
	ErrFaceNotRecognised    = errors.New("face shape could not be determined")

	ErrUnknownPackage   = errors.New("unknown xp package")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotPayable  = errors.New("order can no longer be paid")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrUpstream         = errors.New("upstream service error")
)

// InsufficientXPError reports the amounts behind ErrInsufficientXP.
type InsufficientXPError struct {
	Required int64
	Current  int64
}

func (e *InsufficientXPError) Error() string {
	return fmt.Sprintf("insufficient xp: required %d, current %d", e.Required, e.Current)
}

// Is makes errors.Is(err, ErrInsufficientXP) match.
func (e *InsufficientXPError) Is(target error) bool {
	return target == ErrInsufficientXP
}
