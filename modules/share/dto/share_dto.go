package dto

import (
	"time"

	meetingdto "meetbrief-api/modules/meeting/dto"

	"github.com/google/uuid"
)

type CreateShareRequest struct {
	EventID string `json:"event_id" validate:"required"`
	// ExpiresInDays of 0 means the link never expires.
	ExpiresInDays int `json:"expires_in_days"`
}

type ShareResponse struct {
	ID        uuid.UUID  `json:"id"`
	EventID   string     `json:"event_id"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ShareListResponse struct {
	Shares []ShareResponse `json:"shares"`
}

// SharedBriefResponse is the public page payload.
type SharedBriefResponse struct {
	Meeting  meetingdto.Meeting `json:"meeting"`
	SharedAt time.Time          `json:"shared_at"`
}
