package service

import (
	"context"
	"net/http"
	"strings"

	"meetbrief-api/core/constants"
	"meetbrief-api/core/errors"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/upstream"
	"meetbrief-api/modules/meeting/dto"
	"meetbrief-api/modules/meeting/mapper"
)

type MeetingService interface {
	SyncCalendar(ctx context.Context, bearer string) (*dto.SyncResponse, *errors.AppError)
	GetMeetings(ctx context.Context, bearer, userEmail string) (*dto.MeetingListResponse, *errors.AppError)
	GetDashboard(ctx context.Context, bearer, userEmail string) (*dto.DashboardResponse, *errors.AppError)
}

type meetingService struct {
	heart *upstream.Client
	// sync gets its own client with no transport timeout; the call is
	// bounded by a context deadline instead.
	heartSync *upstream.Client
}

func NewMeetingService(heart, heartSync *upstream.Client) MeetingService {
	return &meetingService{heart: heart, heartSync: heartSync}
}

// SyncCalendar asks the heart API to pull the user's provider calendar.
// This is the system's one long call: it runs until the upstream finishes
// or the multi-minute ceiling aborts it. Business failures arrive inside a
// 200 as success=false; a message mentioning "no auth token" means the user
// has never connected a calendar, which callers surface as a connect
// prompt rather than an error banner.
func (s *meetingService) SyncCalendar(ctx context.Context, bearer string) (*dto.SyncResponse, *errors.AppError) {
	logger.Info("MeetingService:SyncCalendar:Start")

	ctx, cancel := context.WithTimeout(ctx, constants.CalendarSyncTimeout)
	defer cancel()

	var resp dto.SyncResponse
	err := s.heartSync.DoJSON(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   "/calendar/sync",
		Bearer: bearer,
	}, &resp)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewAppError(errors.ErrUpstream, "calendar sync timed out", err)
		}
		return nil, asAppError(err)
	}

	if !resp.Success {
		if strings.Contains(strings.ToLower(resp.Message), "no auth token") {
			return nil, errors.NewAppError(errors.ErrCalendarNotConnected, "no calendar connected", nil)
		}
		return nil, errors.NewAppError(errors.ErrUpstream, resp.Message, nil)
	}

	logger.Info("MeetingService:SyncCalendar:Success", "synced", resp.Synced)
	return &resp, nil
}

func (s *meetingService) GetMeetings(ctx context.Context, bearer, userEmail string) (*dto.MeetingListResponse, *errors.AppError) {
	events, appErr := s.fetchEvents(ctx, bearer)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.MeetingListResponse{
		Meetings: mapper.ToMeetings(events, userEmail),
	}, nil
}

func (s *meetingService) GetDashboard(ctx context.Context, bearer, userEmail string) (*dto.DashboardResponse, *errors.AppError) {
	events, appErr := s.fetchEvents(ctx, bearer)
	if appErr != nil {
		return nil, appErr
	}

	meetings := mapper.ToMeetings(events, userEmail)

	resp := &dto.DashboardResponse{
		TotalMeetings: len(meetings),
	}

	var scoreSum float64
	var scored int
	for _, m := range meetings {
		if m.ReadyToSend {
			resp.ReadyToSend++
		}
		if m.ICPScore != nil {
			scoreSum += float64(*m.ICPScore)
			scored++
		}
	}
	if scored > 0 {
		avg := scoreSum / float64(scored)
		resp.AverageICPScore = &avg
	}

	const dashboardLimit = 5
	if len(meetings) > dashboardLimit {
		meetings = meetings[:dashboardLimit]
	}
	resp.UpcomingMeetings = meetings

	return resp, nil
}

func (s *meetingService) fetchEvents(ctx context.Context, bearer string) ([]dto.CalendarEvent, *errors.AppError) {
	var resp dto.CalendarEventsResponse
	err := s.heart.DoJSON(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/calendar/events",
		Bearer: bearer,
	}, &resp)
	if err != nil {
		logger.Error("MeetingService:FetchEvents:Error", "error", err)
		return nil, asAppError(err)
	}
	return resp.Events, nil
}

func asAppError(err error) *errors.AppError {
	if ae, ok := err.(*errors.AppError); ok {
		return ae
	}
	return errors.NewAppError(errors.ErrUpstream, err.Error(), err)
}
