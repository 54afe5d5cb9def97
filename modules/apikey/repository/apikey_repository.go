package repository

import (
	"context"
	"database/sql"

	"meetbrief-api/core/database"
	"meetbrief-api/modules/apikey/entity"

	"github.com/google/uuid"
)

type APIKeyRepository interface {
	Create(ctx context.Context, key *entity.APIKey) (*entity.APIKey, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.APIKey, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.APIKey, error)
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.APIKey, error)
	Update(ctx context.Context, key *entity.APIKey) error
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	TouchLastUsed(ctx context.Context, id uuid.UUID) error
}

type apiKeyRepository struct {
	db database.IDatabase
}

func NewAPIKeyRepository(db database.IDatabase) APIKeyRepository {
	return &apiKeyRepository{db: db}
}

const keyColumns = "id, user_id, name, prefix, key, active, last_used_at, created_at, updated_at"

func (r *apiKeyRepository) Create(ctx context.Context, key *entity.APIKey) (*entity.APIKey, error) {
	query := `
		INSERT INTO api_keys (user_id, name, prefix, key, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		key.UserID, key.Name, key.Prefix, key.Key, key.Active,
	).Scan(&key.ID, &key.CreatedAt, &key.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return key, nil
}

func (r *apiKeyRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.APIKey, error) {
	query := `SELECT ` + keyColumns + ` FROM api_keys WHERE user_id = $1 ORDER BY created_at DESC`

	keys := []entity.APIKey{}
	if err := r.db.SelectContext(ctx, &keys, query, userID); err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *apiKeyRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.APIKey, error) {
	query := `SELECT ` + keyColumns + ` FROM api_keys WHERE id = $1 AND user_id = $2`

	var key entity.APIKey
	if err := r.db.GetContext(ctx, &key, query, id, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

// GetActiveByUserID returns the newest active key, or nil if none exists.
func (r *apiKeyRepository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*entity.APIKey, error) {
	query := `
		SELECT ` + keyColumns + `
		FROM api_keys
		WHERE user_id = $1 AND active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`
	var key entity.APIKey
	if err := r.db.GetContext(ctx, &key, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &key, nil
}

func (r *apiKeyRepository) Update(ctx context.Context, key *entity.APIKey) error {
	query := `
		UPDATE api_keys
		SET name = $1, active = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
	`
	return r.db.ExecContext(ctx, query, key.Name, key.Active, key.ID, key.UserID)
}

func (r *apiKeyRepository) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	query := `DELETE FROM api_keys WHERE id = $1 AND user_id = $2 RETURNING id`

	var deleted uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&deleted); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *apiKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE api_keys SET last_used_at = NOW() WHERE id = $1`
	return r.db.ExecContext(ctx, query, id)
}
