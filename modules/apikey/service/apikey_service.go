package service

import (
	"context"

	"meetbrief-api/core/constants"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/utils"
	"meetbrief-api/modules/apikey/dto"
	"meetbrief-api/modules/apikey/entity"
	"meetbrief-api/modules/apikey/repository"

	"github.com/google/uuid"
)

type APIKeyService interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateKeyRequest) (*dto.CreatedKeyResponse, *errors.AppError)
	List(ctx context.Context, userID uuid.UUID) (*dto.KeyListResponse, *errors.AppError)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateKeyRequest) (*dto.KeyResponse, *errors.AppError)
	Delete(ctx context.Context, userID, id uuid.UUID) *errors.AppError

	// ActiveKey returns the newest active key for the user, or an
	// ErrNoActiveAPIKey error when there is none. Used by the enrichment
	// upload path before anything is sent to the bridge.
	ActiveKey(ctx context.Context, userID uuid.UUID) (*entity.APIKey, *errors.AppError)
	MarkUsed(ctx context.Context, id uuid.UUID)
}

type apiKeyService struct {
	repo repository.APIKeyRepository
}

func NewAPIKeyService(repo repository.APIKeyRepository) APIKeyService {
	return &apiKeyService{repo: repo}
}

func (s *apiKeyService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateKeyRequest) (*dto.CreatedKeyResponse, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "key name is required", nil)
	}

	prefix := utils.GenerateRandomString(constants.APIKeyPrefixLen)
	secret := utils.GenerateRandomString(constants.APIKeySecretLen)
	fullKey := "mbk_" + prefix + secret

	key := &entity.APIKey{
		UserID: userID,
		Name:   req.Name,
		Prefix: "mbk_" + prefix,
		Key:    fullKey,
		Active: true,
	}

	created, err := s.repo.Create(ctx, key)
	if err != nil {
		logger.Error("APIKeyService:Create:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create api key", err)
	}

	logger.Info("APIKeyService:Create:Success", "userID", userID, "keyID", created.ID)
	return &dto.CreatedKeyResponse{
		KeyResponse: toKeyResponse(created),
		Key:         fullKey,
	}, nil
}

func (s *apiKeyService) List(ctx context.Context, userID uuid.UUID) (*dto.KeyListResponse, *errors.AppError) {
	keys, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Error("APIKeyService:List:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list api keys", err)
	}

	resp := &dto.KeyListResponse{Keys: make([]dto.KeyResponse, 0, len(keys))}
	for i := range keys {
		resp.Keys = append(resp.Keys, toKeyResponse(&keys[i]))
	}
	return resp, nil
}

func (s *apiKeyService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateKeyRequest) (*dto.KeyResponse, *errors.AppError) {
	key, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load api key", err)
	}
	if key == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "api key not found", nil)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "key name cannot be empty", nil)
		}
		key.Name = *req.Name
	}
	if req.Active != nil {
		key.Active = *req.Active
	}

	if err := s.repo.Update(ctx, key); err != nil {
		logger.Error("APIKeyService:Update:Error", "keyID", id, "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update api key", err)
	}

	resp := toKeyResponse(key)
	return &resp, nil
}

func (s *apiKeyService) Delete(ctx context.Context, userID, id uuid.UUID) *errors.AppError {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		logger.Error("APIKeyService:Delete:Error", "keyID", id, "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete api key", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "api key not found", nil)
	}

	logger.Info("APIKeyService:Delete:Success", "userID", userID, "keyID", id)
	return nil
}

func (s *apiKeyService) ActiveKey(ctx context.Context, userID uuid.UUID) (*entity.APIKey, *errors.AppError) {
	key, err := s.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		logger.Error("APIKeyService:ActiveKey:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load api key", err)
	}
	if key == nil {
		return nil, errors.NewAppError(errors.ErrNoActiveAPIKey,
			"No active API key found. Generate one in Services before uploading.", nil)
	}
	return key, nil
}

func (s *apiKeyService) MarkUsed(ctx context.Context, id uuid.UUID) {
	if err := s.repo.TouchLastUsed(ctx, id); err != nil {
		logger.Warn("APIKeyService:MarkUsed:Error", "keyID", id, "error", err)
	}
}

func toKeyResponse(key *entity.APIKey) dto.KeyResponse {
	return dto.KeyResponse{
		ID:         key.ID,
		Name:       key.Name,
		Prefix:     key.Prefix,
		Active:     key.Active,
		LastUsedAt: key.LastUsedAt,
		CreatedAt:  key.CreatedAt,
	}
}
