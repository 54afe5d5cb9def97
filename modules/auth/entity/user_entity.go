package entity

import (
	"time"

	"meetbrief-api/core/entity"
)

// User is a dashboard account. Password is empty for OAuth-only users.
type User struct {
	entity.BaseEntity
	Email           string     `db:"email" json:"email"`
	Password        string     `db:"password" json:"-"`
	FullName        string     `db:"full_name" json:"full_name"`
	Provider        string     `db:"provider" json:"provider"` // "local" | "google" | "microsoft"
	ProviderID      *string    `db:"provider_id" json:"-"`
	AvatarURL       *string    `db:"avatar_url" json:"avatar_url,omitempty"`
	EmailVerifiedAt *time.Time `db:"email_verified_at" json:"email_verified_at,omitempty"`
	OnboardedAt     *time.Time `db:"onboarded_at" json:"onboarded_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}
