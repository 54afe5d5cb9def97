package repository

import (
	"context"
	"database/sql"
	"time"

	"meetbrief-api/core/database"
	"meetbrief-api/modules/auth/entity"

	"github.com/google/uuid"
)

type AuthRepository interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
	UpsertOAuthUser(ctx context.Context, user *entity.User) (*entity.User, error)
	MarkOnboarded(ctx context.Context, id uuid.UUID) error
}

type authRepository struct {
	db database.IDatabase
}

func NewAuthRepository(db database.IDatabase) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, password, full_name, provider, provider_id, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.Email, user.Password, user.FullName, user.Provider, user.ProviderID, user.AvatarURL,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *authRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password, full_name, provider, provider_id, avatar_url,
		       email_verified_at, onboarded_at, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`
	var user entity.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, password, full_name, provider, provider_id, avatar_url,
		       email_verified_at, onboarded_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user entity.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	return r.db.ExecContext(ctx, query, hashedPassword, id)
}

// UpsertOAuthUser creates the account on first OAuth sign-in and refreshes
// provider fields on subsequent ones. The email is the join key: a local
// account signing in with Google becomes a Google-linked account.
func (r *authRepository) UpsertOAuthUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, password, full_name, provider, provider_id, avatar_url, email_verified_at)
		VALUES ($1, '', $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE
		SET provider = EXCLUDED.provider,
		    provider_id = EXCLUDED.provider_id,
		    avatar_url = COALESCE(EXCLUDED.avatar_url, users.avatar_url),
		    email_verified_at = COALESCE(users.email_verified_at, EXCLUDED.email_verified_at),
		    updated_at = NOW()
		RETURNING id, email, password, full_name, provider, provider_id, avatar_url,
		          email_verified_at, onboarded_at, created_at, updated_at
	`
	now := time.Now()
	var out entity.User
	err := r.db.GetContext(ctx, &out, query,
		user.Email, user.FullName, user.Provider, user.ProviderID, user.AvatarURL, now,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *authRepository) MarkOnboarded(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET onboarded_at = NOW(), updated_at = NOW() WHERE id = $1 AND onboarded_at IS NULL`
	return r.db.ExecContext(ctx, query, id)
}
