package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"meetbrief-api/core/config"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/settings/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCache is an in-memory stand-in for the redis cache.
type memCache struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemCache() *memCache {
	return &memCache{tokens: make(map[string]string)}
}

func (c *memCache) AddToTokenBlacklist(context.Context, string, time.Duration) error { return nil }
func (c *memCache) IsTokenBlacklisted(context.Context, string) (bool, error)         { return false, nil }
func (c *memCache) SetOAuthState(context.Context, string, string) error              { return nil }
func (c *memCache) ConsumeOAuthState(context.Context, string) (string, error)        { return "", nil }
func (c *memCache) SetResetToken(context.Context, string, string) error              { return nil }
func (c *memCache) ConsumeResetToken(context.Context, string) (string, error)        { return "", nil }
func (c *memCache) Close() error                                                     { return nil }

func (c *memCache) SetScopedToken(_ context.Context, scope, token string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[scope] = token
	return nil
}

func (c *memCache) GetScopedToken(_ context.Context, scope string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens[scope], nil
}

func (c *memCache) DeleteScopedToken(_ context.Context, scope string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tokens, scope)
	return nil
}

func settingsTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.SettingsAPI.Email = "svc@meetbrief.io"
	cfg.SettingsAPI.Password = "secret"
	config.SetForTest(cfg)
}

func signedTestToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-service-secret"))
	require.NoError(t, err)
	return token
}

func TestListVendors_LogsInOnceAndReusesToken(t *testing.T) {
	settingsTestConfig(t)

	var logins atomic.Int64
	var issued string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			logins.Add(1)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "svc@meetbrief.io", body["email"])

			issued = signedTestToken(t, time.Hour)
			json.NewEncoder(w).Encode(dto.LoginResponse{Token: issued})
		case "/vendors":
			require.Equal(t, "Bearer "+issued, r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(dto.VendorListResponse{
				Vendors: []dto.Vendor{{ID: "slack", Name: "Slack"}},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	svc := NewSettingsService(newMemCache(), upstream.New(srv.URL))

	for i := 0; i < 3; i++ {
		resp, appErr := svc.ListVendors(context.Background())
		require.Nil(t, appErr)
		require.Len(t, resp.Vendors, 1)
		assert.Equal(t, "Slack", resp.Vendors[0].Name)
	}

	assert.EqualValues(t, 1, logins.Load())
}

func TestDo_RejectedTokenTriggersOneRelogin(t *testing.T) {
	settingsTestConfig(t)

	var logins, settingsHits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			logins.Add(1)
			json.NewEncoder(w).Encode(dto.LoginResponse{Token: signedTestToken(t, time.Hour)})
		case "/settings":
			// The first request carries the stale cached token.
			if settingsHits.Add(1) == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(dto.SettingListResponse{})
		}
	}))
	defer srv.Close()

	cache := newMemCache()
	// A previously cached token the settings API no longer accepts.
	require.NoError(t, cache.SetScopedToken(context.Background(), "settings", signedTestToken(t, time.Hour), time.Hour))

	svc := NewSettingsService(cache, upstream.New(srv.URL))

	resp, appErr := svc.ListSettings(context.Background())

	require.Nil(t, appErr)
	require.NotNil(t, resp)
	assert.EqualValues(t, 1, logins.Load())
}

func TestDo_SecondRejectionSignalsLoginNeeded(t *testing.T) {
	settingsTestConfig(t)

	var logins atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			logins.Add(1)
			json.NewEncoder(w).Encode(dto.LoginResponse{Token: signedTestToken(t, time.Hour)})
		case "/settings":
			// Freshly logged-in tokens are rejected too: the credentials
			// themselves are no longer good.
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	svc := NewSettingsService(newMemCache(), upstream.New(srv.URL))

	_, appErr := svc.ListSettings(context.Background())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrSettingsLoginNeeded, appErr.Code)
	// One relogin, not a loop.
	assert.EqualValues(t, 2, logins.Load())
}

func TestLogin_MissingCredentialsFailsClosed(t *testing.T) {
	config.SetForTest(&config.Config{})

	svc := NewSettingsService(newMemCache(), upstream.New("http://settings.invalid"))

	_, appErr := svc.ListVendors(context.Background())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrSettingsLoginNeeded, appErr.Code)
}

func TestTokenSource_ShortLivedTokenNotCached(t *testing.T) {
	settingsTestConfig(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Expires inside the refresh pad, so it must not be cached.
		json.NewEncoder(w).Encode(dto.LoginResponse{Token: signedTestToken(t, 10*time.Second)})
	}))
	defer srv.Close()

	cache := newMemCache()
	src := newSettingsTokenSource(cache, upstream.New(srv.URL))

	token, err := src.Token(context.Background(), "settings")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	cached, _ := cache.GetScopedToken(context.Background(), "settings")
	assert.Empty(t, cached)
}
