package entity

import (
	"meetbrief-api/core/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ICPCriteria is the locally persisted copy of a user's ideal-customer
// profile, stored in the frontend range vocabulary. The heart API holds the
// backend-bucket rendering; this row is the source for re-display since the
// bucket mapping loses information.
type ICPCriteria struct {
	entity.BaseEntity
	UserID        uuid.UUID      `db:"user_id" json:"user_id"`
	EmployeeSizes pq.StringArray `db:"employee_sizes" json:"employee_sizes"`
	FoundedYears  pq.StringArray `db:"founded_years" json:"founded_years"`
	OtherCriteria string         `db:"other_criteria" json:"other_criteria"`
	Enabled       bool           `db:"enabled" json:"enabled"`
}

func (ICPCriteria) TableName() string {
	return "icp_criteria"
}
