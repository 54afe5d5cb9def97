package repository

import (
	"context"
	"database/sql"

	"meetbrief-api/core/database"
	"meetbrief-api/modules/share/entity"

	"github.com/google/uuid"
)

type ShareRepository interface {
	Create(ctx context.Context, share *entity.Share) (*entity.Share, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Share, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Share, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

type shareRepository struct {
	db database.IDatabase
}

func NewShareRepository(db database.IDatabase) ShareRepository {
	return &shareRepository{db: db}
}

const shareColumns = "id, user_id, event_id, slug, title, payload, expires_at, created_at, updated_at"

func (r *shareRepository) Create(ctx context.Context, share *entity.Share) (*entity.Share, error) {
	query := `
		INSERT INTO shares (user_id, event_id, slug, title, payload, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		share.UserID, share.EventID, share.Slug, share.Title, share.Payload, share.ExpiresAt,
	).Scan(&share.ID, &share.CreatedAt, &share.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return share, nil
}

func (r *shareRepository) GetBySlug(ctx context.Context, slug string) (*entity.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE slug = $1`

	var share entity.Share
	if err := r.db.GetContext(ctx, &share, query, slug); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &share, nil
}

func (r *shareRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Share, error) {
	query := `SELECT ` + shareColumns + ` FROM shares WHERE user_id = $1 ORDER BY created_at DESC`

	shares := []entity.Share{}
	if err := r.db.SelectContext(ctx, &shares, query, userID); err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *shareRepository) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	query := `DELETE FROM shares WHERE id = $1 AND user_id = $2 RETURNING id`

	var deleted uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&deleted); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
