package mapper

import (
	"testing"

	"meetbrief-api/modules/meeting/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMeeting_ZeroValueEventDoesNotPanic(t *testing.T) {
	var event dto.CalendarEvent

	meeting := ToMeeting(event, "me@example.com")

	assert.Equal(t, "Untitled meeting", meeting.Title)
	assert.Equal(t, "Unknown time", meeting.Time)
	assert.Equal(t, "Not available", meeting.Duration)
	assert.Equal(t, "Unknown", meeting.Platform)
	assert.Empty(t, meeting.Attendees)
	assert.Nil(t, meeting.ICPScore)
	assert.Nil(t, meeting.CompanyInfo)
}

func TestToMeeting_GarbageFieldsDoNotPanic(t *testing.T) {
	event := dto.CalendarEvent{
		EventID:   "evt-1",
		Event:     "???",
		Start:     "garbage",
		End:       "also garbage",
		Location:  "\x00",
		Attendees: map[string]any{"unexpected": "shape"},
	}

	assert.NotPanics(t, func() {
		meeting := ToMeeting(event, "")
		assert.Equal(t, "evt-1", meeting.ID)
	})
}

func TestToMeeting_ScoreOnlyWithVerdict(t *testing.T) {
	fits := true
	event := dto.CalendarEvent{
		Event:      "Quarterly Review - Acme Corp",
		FitsICP:    &fits,
		ICPReasons: []string{"Company size in range", "Industry matches"},
	}

	meeting := ToMeeting(event, "")

	require.NotNil(t, meeting.ICPScore)
	assert.Equal(t, 14, *meeting.ICPScore)

	event.FitsICP = nil
	assert.Nil(t, ToMeeting(event, "").ICPScore)
}

func TestToMeeting_CompanyFallsBackToTitleInference(t *testing.T) {
	event := dto.CalendarEvent{Event: "Quarterly Review - Acme Corp"}

	meeting := ToMeeting(event, "")

	require.NotNil(t, meeting.CompanyInfo)
	assert.Equal(t, "Acme Corp", meeting.CompanyInfo.Name)

	// A briefed company beats inference.
	event.BriefingSource = &dto.BriefingSource{
		Companies: map[string]dto.BriefingCompany{
			"Globex": {Overview: "from briefing"},
		},
	}
	meeting = ToMeeting(event, "")
	require.NotNil(t, meeting.CompanyInfo)
	assert.Equal(t, "Globex", meeting.CompanyInfo.Name)
}

func TestToMeetings_PreservesOrder(t *testing.T) {
	events := []dto.CalendarEvent{
		{EventID: "a"}, {EventID: "b"}, {EventID: "c"},
	}

	meetings := ToMeetings(events, "")

	require.Len(t, meetings, 3)
	assert.Equal(t, "a", meetings[0].ID)
	assert.Equal(t, "b", meetings[1].ID)
	assert.Equal(t, "c", meetings[2].ID)
}
