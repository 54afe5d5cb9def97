package repository

import (
	"context"
	"database/sql"

	"meetbrief-api/core/database"
	"meetbrief-api/modules/icp/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ICPRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.ICPCriteria, error)
	Upsert(ctx context.Context, criteria *entity.ICPCriteria) (*entity.ICPCriteria, error)
}

type icpRepository struct {
	db database.IDatabase
}

func NewICPRepository(db database.IDatabase) ICPRepository {
	return &icpRepository{db: db}
}

func (r *icpRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.ICPCriteria, error) {
	query := `
		SELECT id, user_id, employee_sizes, founded_years, other_criteria, enabled, created_at, updated_at
		FROM icp_criteria
		WHERE user_id = $1
	`
	var criteria entity.ICPCriteria
	if err := r.db.GetContext(ctx, &criteria, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &criteria, nil
}

func (r *icpRepository) Upsert(ctx context.Context, criteria *entity.ICPCriteria) (*entity.ICPCriteria, error) {
	query := `
		INSERT INTO icp_criteria (user_id, employee_sizes, founded_years, other_criteria, enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET employee_sizes = EXCLUDED.employee_sizes,
		    founded_years = EXCLUDED.founded_years,
		    other_criteria = EXCLUDED.other_criteria,
		    enabled = EXCLUDED.enabled,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		criteria.UserID,
		pq.Array([]string(criteria.EmployeeSizes)),
		pq.Array([]string(criteria.FoundedYears)),
		criteria.OtherCriteria,
		criteria.Enabled,
	).Scan(&criteria.ID, &criteria.CreatedAt, &criteria.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return criteria, nil
}
