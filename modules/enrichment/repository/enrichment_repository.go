package repository

import (
	"context"

	"meetbrief-api/core/constants"
	"meetbrief-api/core/database"
	"meetbrief-api/modules/enrichment/entity"

	"github.com/google/uuid"
)

type EnrichmentRepository interface {
	Create(ctx context.Context, job *entity.EnrichmentJob) (*entity.EnrichmentJob, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.EnrichmentJob, error)
	ListNonTerminal(ctx context.Context) ([]entity.EnrichmentJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, jobErr string) error
}

type enrichmentRepository struct {
	db database.IDatabase
}

func NewEnrichmentRepository(db database.IDatabase) EnrichmentRepository {
	return &enrichmentRepository{db: db}
}

const jobColumns = "id, user_id, remote_id, kind, file_name, object_url, status, row_count, error, created_at, updated_at"

func (r *enrichmentRepository) Create(ctx context.Context, job *entity.EnrichmentJob) (*entity.EnrichmentJob, error) {
	query := `
		INSERT INTO enrichment_jobs (user_id, remote_id, kind, file_name, object_url, status, row_count, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		job.UserID, job.RemoteID, job.Kind, job.FileName, job.ObjectURL,
		job.Status, job.RowCount, job.Error,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *enrichmentRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.EnrichmentJob, error) {
	query := `SELECT ` + jobColumns + ` FROM enrichment_jobs WHERE user_id = $1 ORDER BY created_at DESC`

	jobs := []entity.EnrichmentJob{}
	if err := r.db.SelectContext(ctx, &jobs, query, userID); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *enrichmentRepository) ListNonTerminal(ctx context.Context) ([]entity.EnrichmentJob, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM enrichment_jobs
		WHERE status NOT IN ($1, $2)
		ORDER BY created_at
	`
	jobs := []entity.EnrichmentJob{}
	if err := r.db.SelectContext(ctx, &jobs, query, constants.JobStatusCompleted, constants.JobStatusFailed); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *enrichmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status, jobErr string) error {
	query := `UPDATE enrichment_jobs SET status = $1, error = $2, updated_at = NOW() WHERE id = $3`
	return r.db.ExecContext(ctx, query, status, jobErr, id)
}
