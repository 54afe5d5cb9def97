package dto

import "time"

// Provider constants
const (
	ProviderLocal     = "local"
	ProviderGoogle    = "google"
	ProviderMicrosoft = "microsoft"
)

// ========== Session DTOs ==========

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Provider    string     `json:"provider"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	OnboardedAt *time.Time `json:"onboarded_at,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ========== Password reset DTOs ==========

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CompleteResetRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ========== OAuth DTOs ==========

type OAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type OAuthCallbackRequest struct {
	State string `json:"state" validate:"required"`
	Code  string `json:"code" validate:"required"`
}
