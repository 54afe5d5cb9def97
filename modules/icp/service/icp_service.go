package service

import (
	"context"
	"net/http"

	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/icp/dto"
	"meetbrief-api/modules/icp/entity"
	"meetbrief-api/modules/icp/mapper"
	"meetbrief-api/modules/icp/repository"

	"github.com/google/uuid"
)

type ICPService interface {
	GetCriteria(ctx context.Context, userID uuid.UUID) (*dto.CriteriaResponse, *errors.AppError)
	UpdateCriteria(ctx context.Context, userID uuid.UUID, bearer string, req *dto.CriteriaRequest) (*dto.CriteriaResponse, *errors.AppError)
	GetStatus(ctx context.Context, bearer string) (*dto.StatusResponse, *errors.AppError)
	Analyze(ctx context.Context, bearer string) (*dto.AnalyzeResponse, *errors.AppError)
	GetStats(ctx context.Context, bearer string) (*dto.StatsResponse, *errors.AppError)
	GetQuestions(ctx context.Context, bearer string) (*dto.QuestionsResponse, *errors.AppError)
	UpdateQuestions(ctx context.Context, bearer string, req *dto.QuestionsRequest) (*dto.QuestionsResponse, *errors.AppError)
}

type icpService struct {
	repo  repository.ICPRepository
	heart *upstream.Client
}

func NewICPService(repo repository.ICPRepository, heart *upstream.Client) ICPService {
	return &icpService{repo: repo, heart: heart}
}

// GetCriteria reads the locally stored frontend-vocabulary criteria. The
// local row, not the heart API's bucket rendering, is authoritative for
// display: mapping back from buckets would change what the user picked.
func (s *icpService) GetCriteria(ctx context.Context, userID uuid.UUID) (*dto.CriteriaResponse, *errors.AppError) {
	criteria, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("ICPService:GetCriteria:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load criteria", err)
	}
	if criteria == nil {
		// Nothing saved yet; an empty, disabled profile.
		return &dto.CriteriaResponse{EmployeeSizes: []string{}, FoundedYears: []string{}}, nil
	}

	return &dto.CriteriaResponse{
		EmployeeSizes: criteria.EmployeeSizes,
		FoundedYears:  criteria.FoundedYears,
		OtherCriteria: criteria.OtherCriteria,
		Enabled:       criteria.Enabled,
		UpdatedAt:     &criteria.UpdatedAt,
	}, nil
}

// UpdateCriteria pushes the backend-bucket rendering upstream, then saves
// the frontend values locally. Upstream rejection leaves the local row
// untouched so the two stores cannot drift on failure.
func (s *icpService) UpdateCriteria(ctx context.Context, userID uuid.UUID, bearer string, req *dto.CriteriaRequest) (*dto.CriteriaResponse, *errors.AppError) {
	backend := dto.BackendCriteria{
		EmployeeBuckets: mapper.EmployeeSizesToBackend(req.EmployeeSizes),
		FoundedBuckets:  mapper.FoundedYearsToBackend(req.FoundedYears),
		OtherCriteria:   req.OtherCriteria,
		Enabled:         req.Enabled,
	}

	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodPut,
		Path:   "/icp/criteria",
		Bearer: bearer,
		Body:   backend,
	}, nil)
	if err != nil {
		logger.Error("ICPService:UpdateCriteria:Upstream:Error", "error", err)
		return nil, asAppError(err)
	}

	saved, dbErr := s.repo.Upsert(ctx, &entity.ICPCriteria{
		UserID:        userID,
		EmployeeSizes: req.EmployeeSizes,
		FoundedYears:  req.FoundedYears,
		OtherCriteria: req.OtherCriteria,
		Enabled:       req.Enabled,
	})
	if dbErr != nil {
		logger.Error("ICPService:UpdateCriteria:Upsert:Error", "error", dbErr)
		return nil, errors.NewAppError(errors.ErrInternalServer, "criteria saved upstream but local save failed", dbErr)
	}

	logger.Info("ICPService:UpdateCriteria:Success", "user_id", userID, "enabled", req.Enabled)
	return &dto.CriteriaResponse{
		EmployeeSizes: saved.EmployeeSizes,
		FoundedYears:  saved.FoundedYears,
		OtherCriteria: saved.OtherCriteria,
		Enabled:       saved.Enabled,
		UpdatedAt:     &saved.UpdatedAt,
	}, nil
}

func (s *icpService) GetStatus(ctx context.Context, bearer string) (*dto.StatusResponse, *errors.AppError) {
	var resp dto.StatusResponse
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/icp/status",
		Bearer: bearer,
	}, &resp)
	if err != nil {
		return nil, asAppError(err)
	}
	return &resp, nil
}

func (s *icpService) Analyze(ctx context.Context, bearer string) (*dto.AnalyzeResponse, *errors.AppError) {
	var resp dto.AnalyzeResponse
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   "/icp/analyze",
		Bearer: bearer,
	}, &resp)
	if err != nil {
		return nil, asAppError(err)
	}
	logger.Info("ICPService:Analyze:Queued", "count", resp.Queued)
	return &resp, nil
}

func (s *icpService) GetStats(ctx context.Context, bearer string) (*dto.StatsResponse, *errors.AppError) {
	var resp dto.StatsResponse
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/icp/stats/summary",
		Bearer: bearer,
	}, &resp)
	if err != nil {
		return nil, asAppError(err)
	}
	return &resp, nil
}

func (s *icpService) GetQuestions(ctx context.Context, bearer string) (*dto.QuestionsResponse, *errors.AppError) {
	var resp dto.QuestionsResponse
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/preferences/questions",
		Bearer: bearer,
	}, &resp)
	if err != nil {
		return nil, asAppError(err)
	}
	return &resp, nil
}

func (s *icpService) UpdateQuestions(ctx context.Context, bearer string, req *dto.QuestionsRequest) (*dto.QuestionsResponse, *errors.AppError) {
	var resp dto.QuestionsResponse
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodPut,
		Path:   "/preferences/questions",
		Bearer: bearer,
		Body:   req,
	}, &resp)
	if err != nil {
		logger.Error("ICPService:UpdateQuestions:Upstream:Error", "error", err)
		return nil, asAppError(err)
	}
	logger.Info("ICPService:UpdateQuestions:Success", "count", len(req.Questions))
	return &resp, nil
}

func asAppError(err error) *errors.AppError {
	if ae, ok := err.(*errors.AppError); ok {
		return ae
	}
	return errors.NewAppError(errors.ErrUpstream, err.Error(), err)
}
