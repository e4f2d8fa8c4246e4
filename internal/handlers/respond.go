package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-template-studio/internal/jwt"
	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// InsufficientXPResponse is returned with 402 when the balance is too low
// swagger:model InsufficientXPResponse
type InsufficientXPResponse struct {
	// Error message
	// default: insufficient xp
	Error string `json:"error"`

	// XP the action costs
	// default: 10
	Required int64 `json:"required"`

	// XP the user has
	// default: 4
	Current int64 `json:"current"`
}

// MessageResponse is a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// default: ok
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to HTTP statuses. Unknown errors are
// logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var insufficient *services.InsufficientXPError
	if errors.As(err, &insufficient) {
		writeJSON(w, http.StatusPaymentRequired, InsufficientXPResponse{
			Error:    services.ErrInsufficientXP.Error(),
			Required: insufficient.Required,
			Current:  insufficient.Current,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidImage),
		errors.Is(err, services.ErrInvalidSignature),
		errors.Is(err, services.ErrUnknownPackage),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrInvalidOAuthState),
		errors.Is(err, services.ErrFaceNotRecognised):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrImageTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTemplateNotFound),
		errors.Is(err, services.ErrModelNotFound),
		errors.Is(err, services.ErrGenerationNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrTemplateExists),
		errors.Is(err, services.ErrTemplateUnavailable),
		errors.Is(err, services.ErrGenerationInProgress),
		errors.Is(err, services.ErrOrderNotPayable):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrGenerationFailed),
		errors.Is(err, services.ErrUpstream):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "err", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUserID returns the authenticated user. It writes 401 and returns
// false when the request carries no claims.
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// readImage reads the "image" file of a multipart form, capped at maxBytes.
// The returned slice may be one byte longer than maxBytes so the service can
// report the upload as too large.
func readImage(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1<<20)
	if err := r.ParseMultipartForm(maxBytes + 1<<20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, services.ErrImageTooLarge.Error())
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "expected multipart form with an image field")
		return nil, false
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image field is required")
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image")
		return nil, false
	}
	return data, true
}
