package entity

import (
	"meetbrief-api/core/entity"

	"github.com/google/uuid"
)

// EnrichmentJob is the local record of a bulk CSV upload handed to the
// bridge API. RemoteID is the bridge's job id; Status mirrors the bridge
// side and is refreshed by the poll task until it goes terminal.
type EnrichmentJob struct {
	entity.BaseEntity
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	RemoteID  string    `db:"remote_id" json:"remote_id"`
	Kind      string    `db:"kind" json:"kind"`
	FileName  string    `db:"file_name" json:"file_name"`
	ObjectURL string    `db:"object_url" json:"-"`
	Status    string    `db:"status" json:"status"`
	RowCount  int       `db:"row_count" json:"row_count"`
	Error     string    `db:"error" json:"error,omitempty"`
}
