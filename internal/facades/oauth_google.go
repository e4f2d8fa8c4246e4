package facades

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

	ProviderGoogle = "google"
)

// GoogleOAuth runs the authorization code flow against Google.
type GoogleOAuth struct {
	cfg         *oauth2.Config
	userInfoURL string
}

// GoogleOption configures GoogleOAuth.
type GoogleOption func(*GoogleOAuth)

// WithGoogleEndpoints overrides the provider URLs.
func WithGoogleEndpoints(authURL, tokenURL, userInfoURL string) GoogleOption {
	return func(g *GoogleOAuth) {
		g.cfg.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
		g.userInfoURL = userInfoURL
	}
}

func NewGoogleOAuth(clientID, clientSecret, redirectURL string, opts ...GoogleOption) *GoogleOAuth {
	g := &GoogleOAuth{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  googleAuthURL,
				TokenURL: googleTokenURL,
			},
		},
		userInfoURL: googleUserInfoURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AuthCodeURL is where the browser is sent to grant consent.
func (g *GoogleOAuth) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchUser exchanges the code and loads the account profile.
func (g *GoogleOAuth) FetchUser(ctx context.Context, code string) (*models.OAuthUser, error) {
	token, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange oauth code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.cfg.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch userinfo: status %d, body: %s", resp.StatusCode, string(body))
	}

	info := gjson.ParseBytes(body)
	user := &models.OAuthUser{
		Provider:      ProviderGoogle,
		ProviderID:    info.Get("sub").String(),
		Email:         info.Get("email").String(),
		EmailVerified: info.Get("email_verified").Bool(),
		Name:          info.Get("name").String(),
		Picture:       info.Get("picture").String(),
	}
	if user.ProviderID == "" || user.Email == "" {
		return nil, fmt.Errorf("userinfo is missing sub or email, body: %s", string(body))
	}
	return user, nil
}
