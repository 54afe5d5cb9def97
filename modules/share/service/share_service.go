package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/upstream"
	"meetbrief-api/core/utils"
	meetingdto "meetbrief-api/modules/meeting/dto"
	"meetbrief-api/modules/meeting/mapper"
	"meetbrief-api/modules/share/dto"
	"meetbrief-api/modules/share/entity"
	"meetbrief-api/modules/share/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ShareService interface {
	CreateShare(ctx context.Context, userID uuid.UUID, bearer string, req *dto.CreateShareRequest) (*dto.ShareResponse, *errors.AppError)
	ListShares(ctx context.Context, userID uuid.UUID) (*dto.ShareListResponse, *errors.AppError)
	DeleteShare(ctx context.Context, userID, id uuid.UUID) *errors.AppError

	// GetSharedBrief serves the public page; no session involved.
	GetSharedBrief(ctx context.Context, slug string) (*dto.SharedBriefResponse, *errors.AppError)
}

type shareService struct {
	repo  repository.ShareRepository
	heart *upstream.Client
}

func NewShareService(repo repository.ShareRepository, heart *upstream.Client) ShareService {
	return &shareService{repo: repo, heart: heart}
}

func (s *shareService) CreateShare(ctx context.Context, userID uuid.UUID, bearer string, req *dto.CreateShareRequest) (*dto.ShareResponse, *errors.AppError) {
	if req.EventID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "event_id is required", nil)
	}

	event, appErr := s.findEvent(ctx, bearer, req.EventID)
	if appErr != nil {
		return nil, appErr
	}

	// Snapshot without self-filtering: the public page shows the full
	// attendee list, owner included.
	meeting := mapper.ToMeeting(*event, "")
	payload, err := json.Marshal(meeting)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to snapshot brief", err)
	}

	share := &entity.Share{
		UserID:  userID,
		EventID: req.EventID,
		Slug:    slug.Make(meeting.Title) + "-" + utils.GenerateID(),
		Title:   meeting.Title,
		Payload: payload,
	}
	if req.ExpiresInDays > 0 {
		expires := time.Now().AddDate(0, 0, req.ExpiresInDays)
		share.ExpiresAt = &expires
	}

	if _, err := s.repo.Create(ctx, share); err != nil {
		logger.Error("ShareService:CreateShare:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create share", err)
	}

	logger.Info("ShareService:CreateShare:Success", "userID", userID, "slug", share.Slug)
	resp := toShareResponse(share)
	return &resp, nil
}

func (s *shareService) ListShares(ctx context.Context, userID uuid.UUID) (*dto.ShareListResponse, *errors.AppError) {
	shares, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Error("ShareService:ListShares:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list shares", err)
	}

	resp := &dto.ShareListResponse{Shares: make([]dto.ShareResponse, 0, len(shares))}
	for i := range shares {
		resp.Shares = append(resp.Shares, toShareResponse(&shares[i]))
	}
	return resp, nil
}

func (s *shareService) DeleteShare(ctx context.Context, userID, id uuid.UUID) *errors.AppError {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		logger.Error("ShareService:DeleteShare:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete share", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "share not found", nil)
	}
	return nil
}

func (s *shareService) GetSharedBrief(ctx context.Context, slugParam string) (*dto.SharedBriefResponse, *errors.AppError) {
	share, err := s.repo.GetBySlug(ctx, slugParam)
	if err != nil {
		logger.Error("ShareService:GetSharedBrief:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load share", err)
	}
	// Expired links look identical to missing ones from the outside.
	if share == nil || share.Expired(time.Now()) {
		return nil, errors.NewAppError(errors.ErrNotFound, "shared brief not found", nil)
	}

	var meeting meetingdto.Meeting
	if err := json.Unmarshal(share.Payload, &meeting); err != nil {
		logger.Error("ShareService:GetSharedBrief:Decode:Error", "slug", slugParam, "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "corrupt share payload", err)
	}

	return &dto.SharedBriefResponse{
		Meeting:  meeting,
		SharedAt: share.CreatedAt,
	}, nil
}

func (s *shareService) findEvent(ctx context.Context, bearer, eventID string) (*meetingdto.CalendarEvent, *errors.AppError) {
	var resp meetingdto.CalendarEventsResponse
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/calendar/events",
		Bearer: bearer,
	}, &resp)
	if err != nil {
		if ae, ok := err.(*errors.AppError); ok {
			return nil, ae
		}
		return nil, errors.NewAppError(errors.ErrUpstream, err.Error(), err)
	}

	for i := range resp.Events {
		if resp.Events[i].EventID == eventID {
			return &resp.Events[i], nil
		}
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
}

func toShareResponse(share *entity.Share) dto.ShareResponse {
	return dto.ShareResponse{
		ID:        share.ID,
		EventID:   share.EventID,
		Slug:      share.Slug,
		Title:     share.Title,
		ExpiresAt: share.ExpiresAt,
		CreatedAt: share.CreatedAt,
	}
}
