package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

const userColumns = `id, username, email, password_hash, profile_picture, email_verified,
	verification_token, xp, oauth_provider, oauth_id, is_admin, created_at, updated_at`

// UserRepository persists users.
type UserRepository struct {
	base
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts the user and fills its generated fields.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, profile_picture, email_verified,
			verification_token, xp, oauth_provider, oauth_id, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{u.Username, u.Email, u.PasswordHash, u.ProfilePicture, u.EmailVerified,
		u.VerificationToken, u.XP, u.OAuthProvider, u.OAuthID, u.IsAdmin}

	row := r.executor(ctx).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	logQuery(ctx, query, args, u.ID, err)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)
	logQuery(ctx, query, args, user.ID, err)

	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

// GetByID returns nil when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsernameOrEmail matches either the username or the email, case-insensitively for the email.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users
		WHERE username = $1 OR lower(email) = lower($2)
		ORDER BY created_at
		LIMIT 1`, username, email)
}

// GetByEmail returns nil when no user has the email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// GetByOAuth finds the user linked to the provider account.
func (r *UserRepository) GetByOAuth(ctx context.Context, provider, oauthID string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE oauth_provider = $1 AND oauth_id = $2`, provider, oauthID)
}

// UsernameExists reports whether the username is taken.
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &exists, query, username)
	logQuery(ctx, query, []any{username}, exists, err)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("update user: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// LinkOAuth attaches a provider account to an existing user and marks the email verified.
func (r *UserRepository) LinkOAuth(ctx context.Context, userID uuid.UUID, provider, oauthID string) error {
	return r.execOne(ctx, `
		UPDATE users
		SET oauth_provider = $2, oauth_id = $3, email_verified = TRUE, updated_at = NOW()
		WHERE id = $1
	`, userID, provider, oauthID)
}

// UpdateProfilePicture sets the avatar URL.
func (r *UserRepository) UpdateProfilePicture(ctx context.Context, userID uuid.UUID, url string) error {
	return r.execOne(ctx, `
		UPDATE users SET profile_picture = $2, updated_at = NOW() WHERE id = $1
	`, userID, url)
}

// VerifyEmail consumes the verification token. It returns false when no user holds it.
func (r *UserRepository) VerifyEmail(ctx context.Context, token string) (bool, error) {
	query := `
		UPDATE users
		SET email_verified = TRUE, verification_token = NULL, updated_at = NOW()
		WHERE verification_token = $1
	`
	err := r.execOne(ctx, query, token)
	switch {
	case err == nil:
		return true, nil
	case err == ErrNotFound:
		return false, nil
	default:
		return false, err
	}
}
