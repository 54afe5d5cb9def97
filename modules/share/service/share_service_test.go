package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"meetbrief-api/core/errors"
	"meetbrief-api/core/upstream"
	meetingdto "meetbrief-api/modules/meeting/dto"
	"meetbrief-api/modules/share/dto"
	"meetbrief-api/modules/share/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memShareRepo struct {
	mu     sync.Mutex
	bySlug map[string]*entity.Share
}

func newMemShareRepo() *memShareRepo {
	return &memShareRepo{bySlug: make(map[string]*entity.Share)}
}

func (r *memShareRepo) Create(_ context.Context, share *entity.Share) (*entity.Share, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	share.ID = uuid.New()
	share.CreatedAt = time.Now()
	share.UpdatedAt = share.CreatedAt
	r.bySlug[share.Slug] = share
	return share, nil
}

func (r *memShareRepo) GetBySlug(_ context.Context, slug string) (*entity.Share, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bySlug[slug], nil
}

func (r *memShareRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]entity.Share, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Share
	for _, s := range r.bySlug {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memShareRepo) Delete(_ context.Context, userID, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slug, s := range r.bySlug {
		if s.ID == id && s.UserID == userID {
			delete(r.bySlug, slug)
			return true, nil
		}
	}
	return false, nil
}

func heartWithEvent(t *testing.T, event meetingdto.CalendarEvent) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/calendar/events", r.URL.Path)
		json.NewEncoder(w).Encode(meetingdto.CalendarEventsResponse{
			Events: []meetingdto.CalendarEvent{event},
		})
	}))
}

func TestCreateShare_SnapshotsWithoutSelfFilter(t *testing.T) {
	srv := heartWithEvent(t, meetingdto.CalendarEvent{
		EventID:   "evt-1",
		Event:     "Quarterly Review - Acme Corp",
		Attendees: "Alice (alice@acme.com) (accepted); Owner (owner@example.com) (accepted)",
	})
	defer srv.Close()

	repo := newMemShareRepo()
	svc := NewShareService(repo, upstream.New(srv.URL))

	resp, appErr := svc.CreateShare(context.Background(), uuid.New(), "session-token", &dto.CreateShareRequest{EventID: "evt-1"})
	require.Nil(t, appErr)

	assert.True(t, strings.HasPrefix(resp.Slug, "quarterly-review-acme-corp-"), "slug %q", resp.Slug)
	assert.Equal(t, "Quarterly Review - Acme Corp", resp.Title)

	// The public page renders the snapshot with the owner still listed.
	brief, appErr := svc.GetSharedBrief(context.Background(), resp.Slug)
	require.Nil(t, appErr)
	assert.Equal(t, []string{"Alice (alice@acme.com)", "Owner (owner@example.com)"}, brief.Meeting.Attendees)
}

func TestCreateShare_UnknownEvent(t *testing.T) {
	srv := heartWithEvent(t, meetingdto.CalendarEvent{EventID: "evt-1"})
	defer srv.Close()

	svc := NewShareService(newMemShareRepo(), upstream.New(srv.URL))

	_, appErr := svc.CreateShare(context.Background(), uuid.New(), "session-token", &dto.CreateShareRequest{EventID: "missing"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestGetSharedBrief_ExpiredLooksMissing(t *testing.T) {
	repo := newMemShareRepo()
	svc := NewShareService(repo, nil)

	expired := time.Now().Add(-time.Hour)
	payload, err := json.Marshal(meetingdto.Meeting{Title: "Old"})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), &entity.Share{
		UserID:    uuid.New(),
		Slug:      "old-brief-abc1234",
		Payload:   payload,
		ExpiresAt: &expired,
	})
	require.NoError(t, err)

	_, appErr := svc.GetSharedBrief(context.Background(), "old-brief-abc1234")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	_, appErr = svc.GetSharedBrief(context.Background(), "never-existed")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestDeleteShare(t *testing.T) {
	repo := newMemShareRepo()
	svc := NewShareService(repo, nil)

	userID := uuid.New()
	share, err := repo.Create(context.Background(), &entity.Share{UserID: userID, Slug: "s-1", Payload: []byte("{}")})
	require.NoError(t, err)

	require.Nil(t, svc.DeleteShare(context.Background(), userID, share.ID))

	appErr := svc.DeleteShare(context.Background(), userID, share.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
