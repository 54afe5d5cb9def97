package dto

import (
	"time"

	"github.com/google/uuid"
)

// BridgeUploadResponse is what the bridge returns for an accepted CSV.
type BridgeUploadResponse struct {
	JobID    string `json:"job_id"`
	Status   string `json:"status"`
	RowCount int    `json:"row_count"`
}

// BridgeJobResponse is the bridge's job-status shape.
type BridgeJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type JobResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	FileName  string    `json:"file_name"`
	Status    string    `json:"status"`
	RowCount  int       `json:"row_count"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

type UploadResponse struct {
	Job JobResponse `json:"job"`
}
