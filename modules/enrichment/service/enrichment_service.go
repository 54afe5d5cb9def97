package service

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"meetbrief-api/core/constants"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/queue"
	"meetbrief-api/core/storage"
	"meetbrief-api/core/upstream"
	"meetbrief-api/core/utils"
	apikeyservice "meetbrief-api/modules/apikey/service"
	"meetbrief-api/modules/enrichment/dto"
	"meetbrief-api/modules/enrichment/entity"
	"meetbrief-api/modules/enrichment/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const bridgeKeyHeader = "X-API-Key"

type EnrichmentService interface {
	CreateJob(ctx context.Context, userID uuid.UUID, kind, fileName string, csv []byte) (*dto.UploadResponse, *errors.AppError)
	ListJobs(ctx context.Context, userID uuid.UUID) (*dto.JobListResponse, *errors.AppError)

	// PollJobs refreshes every non-terminal job from the bridge and
	// re-enqueues itself while any remain in flight.
	PollJobs(ctx context.Context, task *asynq.Task) error
}

type enrichmentService struct {
	repo    repository.EnrichmentRepository
	apikeys apikeyservice.APIKeyService
	bridge  *upstream.Client
	store   storage.ObjectStore
	tasks   *asynq.Client
}

func NewEnrichmentService(
	repo repository.EnrichmentRepository,
	apikeys apikeyservice.APIKeyService,
	bridge *upstream.Client,
	store storage.ObjectStore,
	tasks *asynq.Client,
) EnrichmentService {
	return &enrichmentService{
		repo:    repo,
		apikeys: apikeys,
		bridge:  bridge,
		store:   store,
		tasks:   tasks,
	}
}

func (s *enrichmentService) CreateJob(ctx context.Context, userID uuid.UUID, kind, fileName string, csv []byte) (*dto.UploadResponse, *errors.AppError) {
	if kind != constants.EnrichmentKindPerson && kind != constants.EnrichmentKindCompany {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "kind must be person or company", nil)
	}
	if len(csv) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "file is empty", nil)
	}

	// The key check runs before anything leaves this process. Without an
	// active key the bridge is never contacted.
	key, appErr := s.apikeys.ActiveKey(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	objectKey := fmt.Sprintf("enrichment/%s/%s-%s", userID, utils.GenerateID(), fileName)
	objectURL, err := s.store.Put(ctx, objectKey, "text/csv", csv)
	if err != nil {
		logger.Error("EnrichmentService:CreateJob:Stage:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to stage upload", err)
	}

	body, contentType, err := buildUploadBody(kind, fileName, csv)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to build upload", err)
	}

	var bridgeResp dto.BridgeUploadResponse
	err = s.bridge.DoRaw(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   "/enrichment/upload",
		Header: map[string]string{bridgeKeyHeader: key.Key},
	}, contentType, body, &bridgeResp)
	if err != nil {
		logger.Error("EnrichmentService:CreateJob:Upload:Error", "error", err)
		return nil, asAppError(err)
	}
	s.apikeys.MarkUsed(ctx, key.ID)

	status := bridgeResp.Status
	if status == "" {
		status = constants.JobStatusPending
	}

	job := &entity.EnrichmentJob{
		UserID:    userID,
		RemoteID:  bridgeResp.JobID,
		Kind:      kind,
		FileName:  fileName,
		ObjectURL: objectURL,
		Status:    status,
		RowCount:  bridgeResp.RowCount,
	}
	if _, err := s.repo.Create(ctx, job); err != nil {
		logger.Error("EnrichmentService:CreateJob:Persist:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to record job", err)
	}

	s.enqueuePoll(0)

	logger.Info("EnrichmentService:CreateJob:Success",
		"userID", userID, "jobID", job.ID, "remoteID", job.RemoteID, "rows", job.RowCount)
	return &dto.UploadResponse{Job: toJobResponse(job)}, nil
}

func (s *enrichmentService) ListJobs(ctx context.Context, userID uuid.UUID) (*dto.JobListResponse, *errors.AppError) {
	jobs, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Error("EnrichmentService:ListJobs:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list jobs", err)
	}

	resp := &dto.JobListResponse{Jobs: make([]dto.JobResponse, 0, len(jobs))}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(&jobs[i]))
	}
	return resp, nil
}

func (s *enrichmentService) PollJobs(ctx context.Context, task *asynq.Task) error {
	jobs, err := s.repo.ListNonTerminal(ctx)
	if err != nil {
		logger.Error("EnrichmentService:PollJobs:List:Error", "error", err)
		return err
	}
	if len(jobs) == 0 {
		return nil
	}

	remaining := 0
	for i := range jobs {
		if s.refreshJob(ctx, &jobs[i]) {
			remaining++
		}
	}

	if remaining > 0 {
		s.enqueuePoll(constants.EnrichmentPollPeriod)
	}
	logger.Info("EnrichmentService:PollJobs:Done", "checked", len(jobs), "remaining", remaining)
	return nil
}

// refreshJob reports whether the job is still in flight after the refresh.
func (s *enrichmentService) refreshJob(ctx context.Context, job *entity.EnrichmentJob) bool {
	key, appErr := s.apikeys.ActiveKey(ctx, job.UserID)
	if appErr != nil {
		// Key revoked mid-flight; keep the job and retry next cycle.
		logger.Warn("EnrichmentService:PollJobs:NoKey", "jobID", job.ID, "userID", job.UserID)
		return true
	}

	var remote dto.BridgeJobResponse
	err := s.bridge.DoJSON(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/enrichment/jobs/" + job.RemoteID,
		Header: map[string]string{bridgeKeyHeader: key.Key},
	}, &remote)
	if err != nil {
		logger.Warn("EnrichmentService:PollJobs:Fetch:Error", "jobID", job.ID, "error", err)
		return true
	}

	if remote.Status != "" && remote.Status != job.Status {
		if err := s.repo.UpdateStatus(ctx, job.ID, remote.Status, remote.Error); err != nil {
			logger.Error("EnrichmentService:PollJobs:Update:Error", "jobID", job.ID, "error", err)
			return true
		}
		job.Status = remote.Status
	}

	return job.Status != constants.JobStatusCompleted && job.Status != constants.JobStatusFailed
}

func (s *enrichmentService) enqueuePoll(delay time.Duration) {
	opts := []asynq.Option{
		asynq.Unique(constants.EnrichmentPollPeriod + delay),
	}
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}

	_, err := s.tasks.Enqueue(asynq.NewTask(queue.TypeEnrichmentPoll, nil), opts...)
	if err != nil && !stderrors.Is(err, asynq.ErrDuplicateTask) {
		logger.Error("EnrichmentService:EnqueuePoll:Error", "error", err)
	}
}

func buildUploadBody(kind, fileName string, csv []byte) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(csv); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("type", kind); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf, w.FormDataContentType(), nil
}

func toJobResponse(job *entity.EnrichmentJob) dto.JobResponse {
	return dto.JobResponse{
		ID:        job.ID,
		Kind:      job.Kind,
		FileName:  job.FileName,
		Status:    job.Status,
		RowCount:  job.RowCount,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

func asAppError(err error) *errors.AppError {
	if ae, ok := err.(*errors.AppError); ok {
		return ae
	}
	return errors.NewAppError(errors.ErrUpstream, err.Error(), err)
}
