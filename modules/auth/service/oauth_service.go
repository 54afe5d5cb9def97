package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/utils"
	"meetbrief-api/modules/auth/dto"
	"meetbrief-api/modules/auth/entity"
	"meetbrief-api/modules/auth/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
)

const (
	googleUserInfoURL    = "https://www.googleapis.com/oauth2/v2/userinfo"
	microsoftUserInfoURL = "https://graph.microsoft.com/v1.0/me"
)

type OAuthService interface {
	AuthURL(ctx context.Context, provider string) (*dto.OAuthURLResponse, *errors.AppError)
	HandleCallback(ctx context.Context, req *dto.OAuthCallbackRequest) (*dto.AuthResponse, *errors.AppError)
}

type oauthService struct {
	repo  repository.AuthRepository
	cache cache.Cache
}

func NewOAuthService(repo repository.AuthRepository, c cache.Cache) OAuthService {
	return &oauthService{repo: repo, cache: c}
}

func (s *oauthService) AuthURL(ctx context.Context, provider string) (*dto.OAuthURLResponse, *errors.AppError) {
	conf, appErr := oauthConfig(provider)
	if appErr != nil {
		return nil, appErr
	}

	state := utils.GenerateRandomString(24)
	if err := s.cache.SetOAuthState(ctx, state, provider); err != nil {
		logger.Error("OAuthService:AuthURL:SetState:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store oauth state", err)
	}

	url := conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	return &dto.OAuthURLResponse{URL: url, State: state}, nil
}

// HandleCallback redeems the state (single use), exchanges the code, pulls
// the provider profile, and upserts the account.
func (s *oauthService) HandleCallback(ctx context.Context, req *dto.OAuthCallbackRequest) (*dto.AuthResponse, *errors.AppError) {
	provider, err := s.cache.ConsumeOAuthState(ctx, req.State)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid or expired oauth state", err)
	}

	conf, appErr := oauthConfig(provider)
	if appErr != nil {
		return nil, appErr
	}

	token, err := conf.Exchange(ctx, req.Code)
	if err != nil {
		logger.Error("OAuthService:HandleCallback:Exchange:Error", "provider", provider, "error", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "oauth code exchange failed", err)
	}

	profile, appErr := fetchProfile(ctx, provider, token.AccessToken)
	if appErr != nil {
		return nil, appErr
	}
	if profile.Email == "" {
		return nil, errors.NewAppError(errors.ErrUpstream, "provider returned no email", nil)
	}

	user := &entity.User{
		Email:      profile.Email,
		FullName:   profile.Name,
		Provider:   provider,
		ProviderID: &profile.ID,
	}
	if profile.Picture != "" {
		user.AvatarURL = &profile.Picture
	}

	upserted, err := s.repo.UpsertOAuthUser(ctx, user)
	if err != nil {
		logger.Error("OAuthService:HandleCallback:Upsert:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save user", err)
	}

	sessionToken, err := utils.GenerateToken(upserted.ID, upserted.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue session token", err)
	}

	logger.Info("OAuthService:HandleCallback:Success", "provider", provider, "user_id", upserted.ID)
	return &dto.AuthResponse{Token: sessionToken, User: toUserResponse(upserted)}, nil
}

func oauthConfig(provider string) (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}

	switch provider {
	case dto.ProviderGoogle:
		if cfg.GoogleAPI.ClientID == "" {
			return nil, errors.NewAppError(errors.ErrInternalServer, "google oauth not configured", nil)
		}
		return &oauth2.Config{
			ClientID:     cfg.GoogleAPI.ClientID,
			ClientSecret: cfg.GoogleAPI.ClientSecret,
			RedirectURL:  cfg.GoogleAPI.RedirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}, nil
	case dto.ProviderMicrosoft:
		if cfg.MicrosoftAPI.ClientID == "" {
			return nil, errors.NewAppError(errors.ErrInternalServer, "microsoft oauth not configured", nil)
		}
		tenant := cfg.MicrosoftAPI.TenantID
		if tenant == "" {
			tenant = "common"
		}
		return &oauth2.Config{
			ClientID:     cfg.MicrosoftAPI.ClientID,
			ClientSecret: cfg.MicrosoftAPI.ClientSecret,
			RedirectURL:  cfg.MicrosoftAPI.RedirectURI,
			Scopes:       []string{"openid", "email", "profile", "User.Read"},
			Endpoint:     microsoft.AzureADEndpoint(tenant),
		}, nil
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("unsupported provider %q", provider), nil)
	}
}

type providerProfile struct {
	ID      string
	Email   string
	Name    string
	Picture string
}

func fetchProfile(ctx context.Context, provider, accessToken string) (*providerProfile, *errors.AppError) {
	url := googleUserInfoURL
	if provider == dto.ProviderMicrosoft {
		url = microsoftUserInfoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "build profile request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpstream, "failed to fetch provider profile", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Error("OAuthService:FetchProfile:NonOK", "provider", provider, "status", resp.StatusCode, "body", string(body))
		return nil, errors.NewAppError(errors.ErrUpstream, "provider profile request failed", nil)
	}

	if provider == dto.ProviderMicrosoft {
		var ms struct {
			ID                string `json:"id"`
			DisplayName       string `json:"displayName"`
			Mail              string `json:"mail"`
			UserPrincipalName string `json:"userPrincipalName"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&ms); err != nil {
			return nil, errors.NewAppError(errors.ErrUpstream, "decode provider profile", err)
		}
		email := ms.Mail
		if email == "" {
			email = ms.UserPrincipalName
		}
		return &providerProfile{ID: ms.ID, Email: email, Name: ms.DisplayName}, nil
	}

	var g struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&g); err != nil {
		return nil, errors.NewAppError(errors.ErrUpstream, "decode provider profile", err)
	}
	return &providerProfile{ID: g.ID, Email: g.Email, Name: g.Name, Picture: g.Picture}, nil
}
