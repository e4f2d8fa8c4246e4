package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

//go:generate mockgen -source=oauth.go -destination=oauth_mock_test.go -package=handlers

// OAuthFlow runs the provider redirect dance.
type OAuthFlow interface {
	Start(ctx context.Context, redirect string) (string, error)
	Callback(ctx context.Context, state, code string) (string, *models.User, string, error)
}

// NewOAuthStartHandler returns an HTTP handler that redirects to the provider.
// @Summary Start Google sign-in
// @Description Redirects to the Google consent screen
// @Tags auth
// @Param redirect query string false "Relative path to return to after sign-in"
// @Success 302
// @Router /auth/oauth/google/start [get]
func NewOAuthStartHandler(svc OAuthFlow) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := svc.Start(r.Context(), r.URL.Query().Get("redirect"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		http.Redirect(w, r, url, http.StatusFound)
	}
}

// NewOAuthCallbackHandler returns an HTTP handler for the provider callback.
// @Summary Google sign-in callback
// @Description Consumes the state, signs the user in, sets the session cookie and redirects back
// @Tags auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 302
// @Failure 400 {object} handlers.ErrorResponse "Invalid state"
// @Failure 502 {object} handlers.ErrorResponse "Provider error"
// @Router /auth/oauth/google/callback [get]
func NewOAuthCallbackHandler(svc OAuthFlow, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if providerErr := q.Get("error"); providerErr != "" {
			logger.FromContext(r.Context()).Infow("oauth denied by provider", "error", providerErr)
			writeError(w, http.StatusBadRequest, "sign-in was cancelled")
			return
		}

		token, _, redirect, err := svc.Callback(r.Context(), q.Get("state"), q.Get("code"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		cookie.set(w, token)
		http.Redirect(w, r, redirect, http.StatusFound)
	}
}
