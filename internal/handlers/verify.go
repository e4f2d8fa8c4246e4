package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=verify.go -destination=verify_mock_test.go -package=handlers

// EmailVerifier confirms email addresses.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, token string) error
}

// NewVerifyEmailHandler returns an HTTP handler for the emailed verification link.
// @Summary Verify email
// @Description Marks the account owning the token as verified
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Router /auth/verify [get]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.VerifyEmail(r.Context(), r.URL.Query().Get("token")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Email verified"})
	}
}
