package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/metrics"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
	"github.com/sbilibin2017/gw-template-studio/internal/repositories"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

const minPasswordLength = 8

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

// UserStore defines the user operations the auth services need.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByOAuth(ctx context.Context, provider, oauthID string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	LinkOAuth(ctx context.Context, userID uuid.UUID, provider, oauthID string) error
	UpdateProfilePicture(ctx context.Context, userID uuid.UUID, url string) error
	VerifyEmail(ctx context.Context, token string) (bool, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error)
}

// Mailer sends plain-text email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// RegisterInput holds the registration form.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService handles registration, login and email verification.
type AuthService struct {
	users       UserStore
	tx          Transactor
	xp          XPLedger
	jwt         JWTGenerator
	mailer      Mailer
	signupBonus int64
	verifyURL   string
}

// NewAuthService creates a new AuthService. mailer may be nil, in which case
// verification emails are skipped.
func NewAuthService(users UserStore, tx Transactor, xp XPLedger, jwt JWTGenerator, mailer Mailer, signupBonus int64, verifyURL string) *AuthService {
	return &AuthService{
		users:       users,
		tx:          tx,
		xp:          xp,
		jwt:         jwt,
		mailer:      mailer,
		signupBonus: signupBonus,
		verifyURL:   verifyURL,
	}
}

// Register registers a new user and mails the verification link.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	log := logger.FromContext(ctx)

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	existing, err := svc.users.GetByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		log.Infow("user already exists", "username", in.Username)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}
	verification, err := randomToken(32)
	if err != nil {
		return nil, err
	}

	hash := string(hashedPassword)
	user := &models.User{
		Username:          in.Username,
		Email:             in.Email,
		PasswordHash:      &hash,
		VerificationToken: &verification,
	}

	entry, err := createWithBonus(ctx, svc.tx, svc.users, svc.xp, user, svc.signupBonus)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	svc.xp.Publish(ctx, entry)

	svc.sendVerification(ctx, user.Email, verification)
	log.Infow("user registered", "userID", user.ID, "username", user.Username)
	return user, nil
}

func (svc *AuthService) sendVerification(ctx context.Context, to, token string) {
	link := svc.verifyURL + "?token=" + token
	body := fmt.Sprintf("Welcome!\n\nConfirm your email address by opening this link:\n%s\n", link)
	sendMail(ctx, svc.mailer, to, "Confirm your email", body)
}

// Login authenticates by username or email and returns a JWT token. Unknown
// users and wrong passwords both return ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, login, password string) (string, *models.User, error) {
	log := logger.FromContext(ctx)

	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := svc.users.GetByUsernameOrEmail(ctx, login, login)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil || user.PasswordHash == nil {
		log.Infow("login for unknown user", "login", login)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		log.Infow("invalid credentials", "userID", user.ID)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.IsAdmin)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// VerifyEmail marks the account owning token as verified.
func (svc *AuthService) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}

	ok, err := svc.users.VerifyEmail(ctx, token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidToken
	}
	return nil
}

func validateRegistration(in RegisterInput) error {
	if !usernamePattern.MatchString(in.Username) {
		return fmt.Errorf("%w: username must be 3-32 letters, digits, '.', '_' or '-'", ErrInvalidInput)
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

// createWithBonus inserts user and credits the signup bonus atomically.
func createWithBonus(ctx context.Context, tx Transactor, users UserStore, xp XPLedger, user *models.User, bonus int64) (*models.LedgerEntry, error) {
	var entry *models.LedgerEntry

	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		var err error
		entry, err = xp.Credit(ctx, user.ID, bonus, models.ReasonSignupBonus, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	if entry != nil {
		user.XP = entry.BalanceAfter
		metrics.ObserveXP(models.ReasonSignupBonus, entry.Delta)
	}
	return entry, nil
}

// sendMail delivers a message if a mailer is configured. Failures are
// logged and never fail the caller.
func sendMail(ctx context.Context, mailer Mailer, to, subject, body string) {
	log := logger.FromContext(ctx)
	if mailer == nil {
		log.Infow("mailer not configured, skipping email", "to", to, "subject", subject)
		return
	}
	if err := mailer.Send(ctx, to, subject, body); err != nil {
		log.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
	}
}

func randomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
