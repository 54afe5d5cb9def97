package service

import (
	"context"
	"net/http"

	"meetbrief-api/core/cache"
	"meetbrief-api/core/credentials"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/settings/dto"
)

type SettingsService interface {
	ListVendors(ctx context.Context) (*dto.VendorListResponse, *errors.AppError)
	ListSettings(ctx context.Context) (*dto.SettingListResponse, *errors.AppError)
	CreateSetting(ctx context.Context, req *dto.SettingRequest) (*dto.Setting, *errors.AppError)
	UpdateSetting(ctx context.Context, id string, req *dto.SettingRequest) (*dto.Setting, *errors.AppError)
	DeleteSetting(ctx context.Context, id string) *errors.AppError
}

type settingsService struct {
	upstream *upstream.Client
	tokens   *settingsTokenSource
}

func NewSettingsService(c cache.Cache, u *upstream.Client) SettingsService {
	return &settingsService{
		upstream: u,
		tokens:   newSettingsTokenSource(c, u),
	}
}

func (s *settingsService) ListVendors(ctx context.Context) (*dto.VendorListResponse, *errors.AppError) {
	var resp dto.VendorListResponse
	if appErr := s.do(ctx, upstream.Request{Method: http.MethodGet, Path: "/vendors"}, &resp); appErr != nil {
		return nil, appErr
	}
	return &resp, nil
}

func (s *settingsService) ListSettings(ctx context.Context) (*dto.SettingListResponse, *errors.AppError) {
	var resp dto.SettingListResponse
	if appErr := s.do(ctx, upstream.Request{Method: http.MethodGet, Path: "/settings"}, &resp); appErr != nil {
		return nil, appErr
	}
	return &resp, nil
}

func (s *settingsService) CreateSetting(ctx context.Context, req *dto.SettingRequest) (*dto.Setting, *errors.AppError) {
	if appErr := validateSetting(req); appErr != nil {
		return nil, appErr
	}

	var resp dto.Setting
	if appErr := s.do(ctx, upstream.Request{Method: http.MethodPost, Path: "/settings", Body: req}, &resp); appErr != nil {
		return nil, appErr
	}

	logger.Info("SettingsService:CreateSetting:Success", "vendor", req.Vendor)
	return &resp, nil
}

func (s *settingsService) UpdateSetting(ctx context.Context, id string, req *dto.SettingRequest) (*dto.Setting, *errors.AppError) {
	if id == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "setting id is required", nil)
	}
	if appErr := validateSetting(req); appErr != nil {
		return nil, appErr
	}

	var resp dto.Setting
	if appErr := s.do(ctx, upstream.Request{Method: http.MethodPut, Path: "/settings/" + id, Body: req}, &resp); appErr != nil {
		return nil, appErr
	}
	return &resp, nil
}

func (s *settingsService) DeleteSetting(ctx context.Context, id string) *errors.AppError {
	if id == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "setting id is required", nil)
	}
	return s.do(ctx, upstream.Request{Method: http.MethodDelete, Path: "/settings/" + id}, nil)
}

// do attaches the settings-scope token and performs the call. A 401 answer
// invalidates the cached token and retries once with a fresh login; a 401 on
// the retry means the credentials themselves are rejected and surfaces as a
// login-needed error, never as a generic unauthorized.
func (s *settingsService) do(ctx context.Context, req upstream.Request, out any) *errors.AppError {
	for attempt := 0; attempt < 2; attempt++ {
		token, err := s.tokens.Token(ctx, credentials.ScopeSettings)
		if err != nil {
			return asAppError(err)
		}

		req.Bearer = token
		err = s.upstream.DoJSON(ctx, req, out)
		if err == nil {
			return nil
		}

		if ae, ok := err.(*errors.AppError); ok && ae.Code == errors.ErrUnauthorized {
			if attempt == 0 {
				s.tokens.invalidate(ctx)
				continue
			}
			return errors.NewAppError(errors.ErrSettingsLoginNeeded, "settings API rejected credentials", nil)
		}
		return asAppError(err)
	}
	return errors.NewAppError(errors.ErrSettingsLoginNeeded, "settings API rejected credentials", nil)
}

func validateSetting(req *dto.SettingRequest) *errors.AppError {
	if req.Vendor == "" || req.Title == "" || req.HookURL == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "vendor, title and hook_url are required", nil)
	}
	return nil
}

func asAppError(err error) *errors.AppError {
	if ae, ok := err.(*errors.AppError); ok {
		return ae
	}
	return errors.NewAppError(errors.ErrUpstream, err.Error(), err)
}
