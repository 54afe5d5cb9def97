package dto

import "time"

type BalanceResponse struct {
	Credits   int       `json:"credits"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // "purchase" | "usage" | "refund" | "top_up"
	Credits     int       `json:"credits"`
	AmountCents int       `json:"amount_cents,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type PurchaseRequest struct {
	Credits int `json:"credits" validate:"required,gt=0"`
}

type PurchaseResponse struct {
	TransactionID string `json:"transaction_id"`
	Credits       int    `json:"credits"`
	CheckoutURL   string `json:"checkout_url,omitempty"`
}

type AutoTopUpConfig struct {
	Enabled   bool `json:"enabled"`
	Threshold int  `json:"threshold"`
	Amount    int  `json:"amount"`
}

// ========== Stripe subscription DTOs ==========

type SubscriptionStatusResponse struct {
	Active           bool       `json:"active"`
	Plan             string     `json:"plan,omitempty"`
	AutoRenewal      bool       `json:"auto_renewal"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

type CreateSubscriptionRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

type CreateSubscriptionResponse struct {
	SubscriptionID string `json:"subscription_id"`
	CheckoutURL    string `json:"checkout_url,omitempty"`
}

type AutoRenewalRequest struct {
	Enabled bool `json:"enabled"`
}
