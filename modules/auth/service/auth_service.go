package service

import (
	"context"
	"strings"
	"time"

	"meetbrief-api/core/cache"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/utils"
	"meetbrief-api/modules/auth/dto"
	"meetbrief-api/modules/auth/entity"
	"meetbrief-api/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, *errors.AppError)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AuthResponse, *errors.AppError)
	SignOut(ctx context.Context, token string) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	ResetPassword(ctx context.Context, email string) *errors.AppError
	CompleteReset(ctx context.Context, req *dto.CompleteResetRequest) *errors.AppError
	CompleteOnboarding(ctx context.Context, userID uuid.UUID) *errors.AppError
}

type authService struct {
	repo  repository.AuthRepository
	cache cache.Cache
}

func NewAuthService(repo repository.AuthRepository, c cache.Cache) AuthService {
	return &authService{repo: repo, cache: c}
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "email and password are required", nil)
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:SignUp:GetUserByEmail:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "an account with this email already exists", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:SignUp:HashPassword:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &entity.User{
		Email:    email,
		Password: hashed,
		FullName: strings.TrimSpace(req.FullName),
		Provider: dto.ProviderLocal,
	}
	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logger.Error("AuthService:SignUp:CreateUser:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	return s.issueSession(created)
}

func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AuthResponse, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		logger.Error("AuthService:SignIn:GetUserByEmail:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil || user.Password == "" || !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	return s.issueSession(user)
}

// SignOut blacklists the presented token for the remainder of its lifetime.
// The UI clears its local session regardless of whether this call succeeds.
func (s *authService) SignOut(ctx context.Context, token string) *errors.AppError {
	ttl := time.Duration(0)
	if data, err := utils.ValidateAndParseToken(token); err == nil && !data.Expiry.IsZero() {
		ttl = time.Until(data.Expiry)
	}
	if ttl <= 0 {
		// Already expired or unparsable; nothing to revoke.
		return nil
	}
	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("AuthService:SignOut:Blacklist:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("AuthService:Me:GetUserByID:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ResetPassword issues a one-time token. The response is identical whether
// or not the account exists, so the endpoint can't be used to probe emails.
func (s *authService) ResetPassword(ctx context.Context, email string) *errors.AppError {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		logger.Error("AuthService:ResetPassword:GetUserByEmail:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		logger.Info("AuthService:ResetPassword:UnknownEmail")
		return nil
	}

	token := utils.GenerateRandomString(32)
	if err := s.cache.SetResetToken(ctx, token, user.ID.String()); err != nil {
		logger.Error("AuthService:ResetPassword:SetResetToken:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to store reset token", err)
	}

	// Delivery goes through the form-relay mailer; until that template is
	// wired the token is only surfaced in logs for operators.
	logger.Info("AuthService:ResetPassword:TokenIssued", "user_id", user.ID)
	return nil
}

func (s *authService) CompleteReset(ctx context.Context, req *dto.CompleteResetRequest) *errors.AppError {
	userIDStr, err := s.cache.ConsumeResetToken(ctx, req.Token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid or expired reset token", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "corrupt reset token payload", err)
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	if err := s.repo.UpdatePassword(ctx, userID, hashed); err != nil {
		logger.Error("AuthService:CompleteReset:UpdatePassword:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to update password", err)
	}

	logger.Info("AuthService:CompleteReset:Success", "user_id", userID)
	return nil
}

func (s *authService) CompleteOnboarding(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkOnboarded(ctx, userID); err != nil {
		logger.Error("AuthService:CompleteOnboarding:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to complete onboarding", err)
	}
	return nil
}

func (s *authService) issueSession(user *entity.User) (*dto.AuthResponse, *errors.AppError) {
	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:IssueSession:GenerateToken:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue session token", err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		FullName:    user.FullName,
		Provider:    user.Provider,
		OnboardedAt: user.OnboardedAt,
	}
	if user.AvatarURL != nil {
		resp.AvatarURL = *user.AvatarURL
	}
	return resp
}
