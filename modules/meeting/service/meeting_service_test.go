package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetbrief-api/core/errors"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/meeting/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(handler http.Handler) (MeetingService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := upstream.New(srv.URL)
	return NewMeetingService(client, client), srv
}

func TestSyncCalendar_NoAuthTokenMeansNotConnected(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/calendar/sync", r.URL.Path)
		// Business failure inside a 200, the heart API's way.
		json.NewEncoder(w).Encode(dto.SyncResponse{
			Success: false,
			Message: "No auth token found for this user",
		})
	}))
	defer srv.Close()

	resp, appErr := svc.SyncCalendar(context.Background(), "session-token")

	require.Nil(t, resp)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCalendarNotConnected, appErr.Code)
}

func TestSyncCalendar_OtherFailureIsUpstream(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.SyncResponse{Success: false, Message: "provider rate limited"})
	}))
	defer srv.Close()

	_, appErr := svc.SyncCalendar(context.Background(), "session-token")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUpstream, appErr.Code)
	assert.Equal(t, "provider rate limited", appErr.Message)
}

func TestSyncCalendar_Success(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(dto.SyncResponse{Success: true, Synced: 4})
	}))
	defer srv.Close()

	resp, appErr := svc.SyncCalendar(context.Background(), "session-token")

	require.Nil(t, appErr)
	require.NotNil(t, resp)
	assert.Equal(t, 4, resp.Synced)
}

func TestGetMeetings_MapsEvents(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/calendar/events", r.URL.Path)
		json.NewEncoder(w).Encode(dto.CalendarEventsResponse{
			Events: []dto.CalendarEvent{
				{
					EventID:   "evt-1",
					Event:     "Quarterly Review - Acme Corp",
					Start:     "2026-03-15T14:00:00Z",
					End:       "2026-03-15T14:45:00Z",
					Location:  "https://zoom.us/j/1",
					Attendees: "Alice (alice@acme.com) (accepted); Me (me@example.com) (accepted)",
				},
			},
		})
	}))
	defer srv.Close()

	resp, appErr := svc.GetMeetings(context.Background(), "session-token", "me@example.com")

	require.Nil(t, appErr)
	require.Len(t, resp.Meetings, 1)

	m := resp.Meetings[0]
	assert.Equal(t, "evt-1", m.ID)
	assert.Equal(t, "45 min", m.Duration)
	assert.Equal(t, "Zoom", m.Platform)
	assert.Equal(t, []string{"Alice (alice@acme.com)"}, m.Attendees)
	require.NotNil(t, m.CompanyInfo)
	assert.Equal(t, "Acme Corp", m.CompanyInfo.Name)
}

func TestGetMeetings_UpstreamUnauthorized(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	}))
	defer srv.Close()

	_, appErr := svc.GetMeetings(context.Background(), "stale", "me@example.com")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestGetDashboard_Aggregates(t *testing.T) {
	fit, nonFit := true, false
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.CalendarEventsResponse{
			Events: []dto.CalendarEvent{
				{EventID: "a", EnrichedReadyToSend: true, FitsICP: &fit},    // score 12
				{EventID: "b", FitsICP: &nonFit},                           // score 7
				{EventID: "c"},                                             // unscored
				{EventID: "d"}, {EventID: "e"}, {EventID: "f"},
			},
		})
	}))
	defer srv.Close()

	resp, appErr := svc.GetDashboard(context.Background(), "session-token", "")

	require.Nil(t, appErr)
	assert.Equal(t, 6, resp.TotalMeetings)
	assert.Equal(t, 1, resp.ReadyToSend)
	require.NotNil(t, resp.AverageICPScore)
	assert.InDelta(t, 9.5, *resp.AverageICPScore, 0.001)
	assert.Len(t, resp.UpcomingMeetings, 5)
}
