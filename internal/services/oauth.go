package services

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
	"github.com/sbilibin2017/gw-template-studio/internal/repositories"
)

//go:generate mockgen -source=oauth.go -destination=oauth_mock_test.go -package=services

// OAuthProvider is an external identity provider.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	FetchUser(ctx context.Context, code string) (*models.OAuthUser, error)
}

// OAuthStateStore keeps one-time OAuth states.
type OAuthStateStore interface {
	Save(ctx context.Context, state, redirect string) error
	Consume(ctx context.Context, state string) (string, bool, error)
}

// OAuthService signs users in through an external provider.
type OAuthService struct {
	provider    OAuthProvider
	states      OAuthStateStore
	users       UserStore
	tx          Transactor
	xp          XPLedger
	jwt         JWTGenerator
	signupBonus int64
}

func NewOAuthService(provider OAuthProvider, states OAuthStateStore, users UserStore, tx Transactor, xp XPLedger, jwt JWTGenerator, signupBonus int64) *OAuthService {
	return &OAuthService{
		provider:    provider,
		states:      states,
		users:       users,
		tx:          tx,
		xp:          xp,
		jwt:         jwt,
		signupBonus: signupBonus,
	}
}

// Start stores a fresh state and returns the provider consent URL. redirect
// is where the browser lands after the callback; only relative paths are kept.
func (s *OAuthService) Start(ctx context.Context, redirect string) (string, error) {
	state, err := randomToken(16)
	if err != nil {
		return "", err
	}
	if err := s.states.Save(ctx, state, sanitizeRedirect(redirect)); err != nil {
		logger.FromContext(ctx).Errorw("failed to save oauth state", "error", err)
		return "", err
	}
	return s.provider.AuthCodeURL(state), nil
}

// Callback consumes state, exchanges code and signs the user in. It returns
// the session token, the user and the redirect saved by Start.
func (s *OAuthService) Callback(ctx context.Context, state, code string) (string, *models.User, string, error) {
	log := logger.FromContext(ctx)

	if state == "" || code == "" {
		return "", nil, "", ErrInvalidOAuthState
	}
	redirect, ok, err := s.states.Consume(ctx, state)
	if err != nil {
		return "", nil, "", err
	}
	if !ok {
		return "", nil, "", ErrInvalidOAuthState
	}

	info, err := s.provider.FetchUser(ctx, code)
	if err != nil {
		log.Errorw("failed to fetch oauth user", "error", err)
		return "", nil, "", errors.Join(ErrUpstream, err)
	}

	user, err := s.resolveUser(ctx, info)
	if err != nil {
		return "", nil, "", err
	}

	token, err := s.jwt.Generate(ctx, user.ID, user.IsAdmin)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, "", err
	}
	return token, user, redirect, nil
}

// resolveUser finds the user by provider id, then links by verified email,
// then creates a new account.
func (s *OAuthService) resolveUser(ctx context.Context, info *models.OAuthUser) (*models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetByOAuth(ctx, info.Provider, info.ProviderID)
	if err != nil || user != nil {
		return user, err
	}

	email := strings.ToLower(strings.TrimSpace(info.Email))
	if info.EmailVerified {
		user, err = s.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			if err := s.users.LinkOAuth(ctx, user.ID, info.Provider, info.ProviderID); err != nil {
				return nil, err
			}
			log.Infow("linked oauth identity", "userID", user.ID, "provider", info.Provider)
			return user, nil
		}
	}

	username, err := s.uniqueUsername(ctx, info)
	if err != nil {
		return nil, err
	}

	provider, providerID := info.Provider, info.ProviderID
	user = &models.User{
		Username:      username,
		Email:         email,
		EmailVerified: info.EmailVerified,
		OAuthProvider: &provider,
		OAuthID:       &providerID,
	}
	if info.Picture != "" {
		picture := info.Picture
		user.ProfilePicture = &picture
	}

	entry, err := createWithBonus(ctx, s.tx, s.users, s.xp, user, s.signupBonus)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	s.xp.Publish(ctx, entry)

	log.Infow("user created via oauth", "userID", user.ID, "provider", provider)
	return user, nil
}

func (s *OAuthService) uniqueUsername(ctx context.Context, info *models.OAuthUser) (string, error) {
	base := usernameBase(info)
	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		exists, err := s.users.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		suffix, err := randomToken(2)
		if err != nil {
			return "", err
		}
		candidate = base + "_" + suffix
	}

	suffix, err := randomToken(6)
	if err != nil {
		return "", err
	}
	return "user_" + suffix, nil
}

func usernameBase(info *models.OAuthUser) string {
	source := info.Email
	if at := strings.IndexByte(source, '@'); at > 0 {
		source = source[:at]
	} else if info.Name != "" {
		source = info.Name
	}

	var b strings.Builder
	for _, r := range strings.ToLower(source) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '_', r == '.', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}

	base := b.String()
	if len(base) > 24 {
		base = base[:24]
	}
	if len(base) < 3 {
		base = "user"
	}
	return base
}

func sanitizeRedirect(redirect string) string {
	if !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") || strings.Contains(redirect, `\`) {
		return "/"
	}
	return redirect
}
