package entity

import (
	"time"

	"meetbrief-api/core/entity"

	"github.com/google/uuid"
)

// Share is a public link to one meeting brief. The brief is snapshotted
// into Payload at share time, so the public page never needs the owner's
// session to render.
type Share struct {
	entity.BaseEntity
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	EventID   string     `db:"event_id" json:"event_id"`
	Slug      string     `db:"slug" json:"slug"`
	Title     string     `db:"title" json:"title"`
	Payload   []byte     `db:"payload" json:"-"`
	ExpiresAt *time.Time `db:"expires_at" json:"expires_at,omitempty"`
}

func (s *Share) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
