package service

import (
	"context"
	"net/http"
	"time"

	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/constants"
	"meetbrief-api/core/credentials"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/upstream"
	"meetbrief-api/core/utils"
	"meetbrief-api/modules/settings/dto"
)

// settingsTokenSource logs into the settings API with the service account
// from config and caches the issued JWT until shortly before its exp claim.
// The settings API signs with its own secret, so the token is opaque to us;
// only the expiry is decoded, unverified.
type settingsTokenSource struct {
	cache    cache.Cache
	upstream *upstream.Client
}

// newSettingsTokenSource returns a credentials.TokenSource for
// credentials.ScopeSettings.
func newSettingsTokenSource(c cache.Cache, u *upstream.Client) *settingsTokenSource {
	return &settingsTokenSource{cache: c, upstream: u}
}

var _ credentials.TokenSource = (*settingsTokenSource)(nil)

func (s *settingsTokenSource) Token(ctx context.Context, scope credentials.Scope) (string, error) {
	if scope != credentials.ScopeSettings {
		return "", errors.NewAppError(errors.ErrInternalServer, "unsupported credential scope", nil)
	}

	cached, err := s.cache.GetScopedToken(ctx, string(scope))
	if err != nil {
		logger.Warn("SettingsTokenSource:CacheGet:Error", "error", err)
	}
	if cached != "" {
		return cached, nil
	}

	return s.login(ctx)
}

func (s *settingsTokenSource) login(ctx context.Context) (string, error) {
	cfg := config.Get()
	if cfg.SettingsAPI.Email == "" || cfg.SettingsAPI.Password == "" {
		return "", errors.NewAppError(errors.ErrSettingsLoginNeeded, "settings API credentials not configured", nil)
	}

	var resp dto.LoginResponse
	err := s.upstream.DoJSON(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body: map[string]string{
			"email":    cfg.SettingsAPI.Email,
			"password": cfg.SettingsAPI.Password,
		},
	}, &resp)
	if err != nil {
		logger.Error("SettingsTokenSource:Login:Error", "error", err)
		return "", errors.NewAppError(errors.ErrSettingsLoginNeeded, "settings API login failed", err)
	}
	if resp.Token == "" {
		return "", errors.NewAppError(errors.ErrSettingsLoginNeeded, "settings API returned no token", nil)
	}

	ttl := constants.AccessTokenTTL
	if exp, err := utils.DecodeExpiryUnverified(resp.Token); err == nil {
		ttl = time.Until(exp) - constants.SettingsTokenPad
	}
	if ttl <= 0 {
		// Token already at or past its refresh window; use it once, don't cache.
		return resp.Token, nil
	}

	if err := s.cache.SetScopedToken(ctx, string(credentials.ScopeSettings), resp.Token, ttl); err != nil {
		logger.Warn("SettingsTokenSource:CacheSet:Error", "error", err)
	}

	logger.Info("SettingsTokenSource:Login:Success", "ttl", ttl.String())
	return resp.Token, nil
}

// invalidate drops the cached token so the next call re-logins. Called when
// the settings API rejects a request with 401.
func (s *settingsTokenSource) invalidate(ctx context.Context) {
	if err := s.cache.DeleteScopedToken(ctx, string(credentials.ScopeSettings)); err != nil {
		logger.Warn("SettingsTokenSource:Invalidate:Error", "error", err)
	}
}
