package entity

import (
	"time"

	"meetbrief-api/core/entity"

	"github.com/google/uuid"
)

// APIKey is the long-lived bridge-API credential. The full key has to stay
// retrievable because this service attaches it to bridge uploads on the
// user's behalf; listings only ever expose the prefix.
type APIKey struct {
	entity.BaseEntity
	UserID     uuid.UUID  `db:"user_id" json:"user_id"`
	Name       string     `db:"name" json:"name"`
	Prefix     string     `db:"prefix" json:"prefix"`
	Key        string     `db:"key" json:"-"`
	Active     bool       `db:"active" json:"active"`
	LastUsedAt *time.Time `db:"last_used_at" json:"last_used_at,omitempty"`
}
