package constants

import "time"

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyOAuthState     = "auth:oauth_state:"
	RedisKeyResetToken     = "auth:reset_token:"
	RedisKeyScopedToken    = "credentials:token:"
)

// Token lifetimes
const (
	AccessTokenTTL   = 24 * time.Hour
	OAuthStateTTL    = 10 * time.Minute
	ResetTokenTTL    = 30 * time.Minute
	SettingsTokenPad = 60 * time.Second // refresh settings-API JWT this close to expiry
)

// Upstream call budgets. Calendar sync is the one long call in the system:
// the heart API blocks while it pulls the provider calendar, so it gets a
// multi-minute ceiling instead of the default client timeout.
const (
	UpstreamTimeout      = 30 * time.Second
	CalendarSyncTimeout  = 5 * time.Minute
	EnrichmentPollPeriod = 15 * time.Second
)

// Enrichment job statuses mirrored from the bridge/heart side. A job is
// terminal once it reaches completed or failed.
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

const (
	EnrichmentKindPerson  = "person"
	EnrichmentKindCompany = "company"
)

// API key format: the full key is shown once at creation and stays
// retrievable for bridge uploads; listings only expose the prefix.
const (
	APIKeyPrefixLen = 8
	APIKeySecretLen = 32
)
