package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"meetbrief-api/core/constants"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/upstream"
	apikeydto "meetbrief-api/modules/apikey/dto"
	apikeyentity "meetbrief-api/modules/apikey/entity"
	"meetbrief-api/modules/enrichment/dto"
	"meetbrief-api/modules/enrichment/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keylessAPIKeys reports no active key for every user.
type keylessAPIKeys struct{}

func (keylessAPIKeys) Create(context.Context, uuid.UUID, *apikeydto.CreateKeyRequest) (*apikeydto.CreatedKeyResponse, *errors.AppError) {
	return nil, nil
}
func (keylessAPIKeys) List(context.Context, uuid.UUID) (*apikeydto.KeyListResponse, *errors.AppError) {
	return nil, nil
}
func (keylessAPIKeys) Update(context.Context, uuid.UUID, uuid.UUID, *apikeydto.UpdateKeyRequest) (*apikeydto.KeyResponse, *errors.AppError) {
	return nil, nil
}
func (keylessAPIKeys) Delete(context.Context, uuid.UUID, uuid.UUID) *errors.AppError { return nil }
func (keylessAPIKeys) ActiveKey(context.Context, uuid.UUID) (*apikeyentity.APIKey, *errors.AppError) {
	return nil, errors.NewAppError(errors.ErrNoActiveAPIKey,
		"No active API key found. Generate one in Services before uploading.", nil)
}
func (keylessAPIKeys) MarkUsed(context.Context, uuid.UUID) {}

// recordingStore counts Put calls.
type recordingStore struct {
	puts atomic.Int64
}

func (s *recordingStore) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	s.puts.Add(1)
	return "s3://test/" + key, nil
}

// stubRepo fails loudly if the service tries to persist anything.
type stubRepo struct {
	t *testing.T
}

func (r *stubRepo) Create(context.Context, *entity.EnrichmentJob) (*entity.EnrichmentJob, error) {
	r.t.Fatal("job must not be persisted")
	return nil, nil
}
func (r *stubRepo) ListByUserID(context.Context, uuid.UUID) ([]entity.EnrichmentJob, error) {
	return nil, nil
}
func (r *stubRepo) ListNonTerminal(context.Context) ([]entity.EnrichmentJob, error) {
	return nil, nil
}
func (r *stubRepo) UpdateStatus(context.Context, uuid.UUID, string, string) error { return nil }

func TestCreateJob_NoActiveKeyNeverTouchesBridge(t *testing.T) {
	var bridgeHits atomic.Int64
	bridge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bridgeHits.Add(1)
	}))
	defer bridge.Close()

	store := &recordingStore{}
	svc := NewEnrichmentService(&stubRepo{t: t}, keylessAPIKeys{}, upstream.New(bridge.URL), store, nil)

	resp, appErr := svc.CreateJob(context.Background(), uuid.New(), "person", "contacts.csv", []byte("email\nalice@acme.com\n"))

	require.Nil(t, resp)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNoActiveAPIKey, appErr.Code)
	assert.Contains(t, appErr.Message, "No active API key found")

	// Nothing may leave the process without a key.
	assert.EqualValues(t, 0, bridgeHits.Load())
	assert.EqualValues(t, 0, store.puts.Load())
}

func TestCreateJob_ValidatesInputBeforeAnything(t *testing.T) {
	svc := NewEnrichmentService(&stubRepo{t: t}, keylessAPIKeys{}, nil, nil, nil)

	_, appErr := svc.CreateJob(context.Background(), uuid.New(), "alien", "contacts.csv", []byte("x"))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	_, appErr = svc.CreateJob(context.Background(), uuid.New(), "person", "contacts.csv", nil)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

// fixedAPIKeys hands out one key and records MarkUsed calls.
type fixedAPIKeys struct {
	keylessAPIKeys
	key  apikeyentity.APIKey
	used atomic.Int64
}

func (f *fixedAPIKeys) ActiveKey(context.Context, uuid.UUID) (*apikeyentity.APIKey, *errors.AppError) {
	return &f.key, nil
}

func (f *fixedAPIKeys) MarkUsed(context.Context, uuid.UUID) { f.used.Add(1) }

type memJobRepo struct {
	mu   sync.Mutex
	jobs []entity.EnrichmentJob
}

func (r *memJobRepo) Create(_ context.Context, job *entity.EnrichmentJob) (*entity.EnrichmentJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = uuid.New()
	r.jobs = append(r.jobs, *job)
	return job, nil
}

func (r *memJobRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]entity.EnrichmentJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.EnrichmentJob
	for _, j := range r.jobs {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *memJobRepo) ListNonTerminal(_ context.Context) ([]entity.EnrichmentJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.EnrichmentJob
	for _, j := range r.jobs {
		if j.Status != constants.JobStatusCompleted && j.Status != constants.JobStatusFailed {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *memJobRepo) UpdateStatus(_ context.Context, id uuid.UUID, status, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].Status = status
			r.jobs[i].Error = errMsg
		}
	}
	return nil
}

func TestCreateJob_UploadsWithKeyAndRecords(t *testing.T) {
	bridge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/enrichment/upload", r.URL.Path)
		require.Equal(t, "mbk_testkey", r.Header.Get("X-API-Key"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "person", r.FormValue("type"))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		file.Close()
		assert.Equal(t, "contacts.csv", header.Filename)
		json.NewEncoder(w).Encode(dto.BridgeUploadResponse{JobID: "remote-1", Status: "processing", RowCount: 3})
	}))
	defer bridge.Close()

	keys := &fixedAPIKeys{key: apikeyentity.APIKey{Key: "mbk_testkey"}}
	repo := &memJobRepo{}
	store := &recordingStore{}
	// Enqueue failures against the dead address are logged and swallowed.
	tasks := asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:1"})
	defer tasks.Close()

	svc := NewEnrichmentService(repo, keys, upstream.New(bridge.URL), store, tasks)
	userID := uuid.New()

	resp, appErr := svc.CreateJob(context.Background(), userID, "person", "contacts.csv", []byte("email\nalice@acme.com\n"))

	require.Nil(t, appErr)
	assert.Equal(t, "processing", resp.Job.Status)
	assert.Equal(t, 3, resp.Job.RowCount)
	assert.EqualValues(t, 1, store.puts.Load())
	assert.EqualValues(t, 1, keys.used.Load())

	listed, appErr := svc.ListJobs(context.Background(), userID)
	require.Nil(t, appErr)
	require.Len(t, listed.Jobs, 1)
	assert.Equal(t, "contacts.csv", listed.Jobs[0].FileName)
}

func TestPollJobs_StopsWhenAllTerminal(t *testing.T) {
	bridge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.BridgeJobResponse{JobID: "remote-1", Status: constants.JobStatusCompleted})
	}))
	defer bridge.Close()

	keys := &fixedAPIKeys{key: apikeyentity.APIKey{Key: "mbk_testkey"}}
	repo := &memJobRepo{}
	repo.Create(context.Background(), &entity.EnrichmentJob{
		UserID: uuid.New(), RemoteID: "remote-1", Status: constants.JobStatusProcessing,
	})

	// A nil task client proves nothing gets re-enqueued once every job is
	// terminal; an enqueue attempt would panic.
	svc := NewEnrichmentService(repo, keys, upstream.New(bridge.URL), nil, nil)

	require.NoError(t, svc.PollJobs(context.Background(), nil))

	remaining, err := repo.ListNonTerminal(context.Background())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestPollJobs_KeepsJobOnRefreshFailure(t *testing.T) {
	bridge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	bridge.Close()

	keys := &fixedAPIKeys{key: apikeyentity.APIKey{Key: "mbk_testkey"}}
	repo := &memJobRepo{}
	repo.Create(context.Background(), &entity.EnrichmentJob{
		UserID: uuid.New(), RemoteID: "remote-1", Status: constants.JobStatusProcessing,
	})

	tasks := asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:1"})
	defer tasks.Close()
	svc := NewEnrichmentService(repo, keys, upstream.New(bridge.URL), nil, tasks)

	require.NoError(t, svc.PollJobs(context.Background(), nil))

	remaining, err := repo.ListNonTerminal(context.Background())
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Equal(t, constants.JobStatusProcessing, remaining[0].Status)
}
