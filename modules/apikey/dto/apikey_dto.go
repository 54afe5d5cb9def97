package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateKeyRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateKeyRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type KeyResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	Active     bool       `json:"active"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreatedKeyResponse carries the full key. It is returned exactly once, at
// creation time.
type CreatedKeyResponse struct {
	KeyResponse
	Key string `json:"key"`
}

type KeyListResponse struct {
	Keys []KeyResponse `json:"keys"`
}
