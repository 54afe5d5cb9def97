package mapper

import (
	icpmapper "meetbrief-api/modules/icp/mapper"
	"meetbrief-api/modules/meeting/dto"
)

// ToMeeting projects one raw calendar event into its display view-model.
// Total over malformed input: missing fields fall back to "Unknown"-style
// strings and the function never panics.
func ToMeeting(event dto.CalendarEvent, userEmail string) dto.Meeting {
	start := ParseEventTime(event.Start)
	end := ParseEventTime(event.End)

	title := event.Event
	if title == "" {
		title = "Untitled meeting"
	}

	meeting := dto.Meeting{
		ID:               event.EventID,
		Title:            title,
		Time:             FormatEventTime(start),
		Duration:         FormatDuration(start, end),
		Platform:         DetectPlatform(event.Location),
		Attendees:        ExtractAttendees(event.Attendees, userEmail),
		AttendeeDetails:  FlattenEnrichment(event.BriefingSource, event.EnrichedSource),
		Insights:         CollectInsights(event.BriefingSource),
		ReadyToSend:      event.EnrichedReadyToSend,
		EnrichmentStatus: event.EnrichmentStatus,
	}

	meeting.CompanyInfo = PrimaryCompany(event.BriefingSource)
	if meeting.CompanyInfo == nil {
		if inferred := InferCompanyName(title); inferred != "" {
			meeting.CompanyInfo = &dto.CompanyInfo{Name: inferred}
		}
	}

	// The score only exists once the backend has delivered a verdict.
	if event.FitsICP != nil {
		score := icpmapper.ScoreEvent(*event.FitsICP, event.ICPReasons, event.NonICPReasons)
		meeting.ICPScore = &score
	}

	return meeting
}

// ToMeetings maps a raw event list, preserving order.
func ToMeetings(events []dto.CalendarEvent, userEmail string) []dto.Meeting {
	meetings := make([]dto.Meeting, 0, len(events))
	for _, event := range events {
		meetings = append(meetings, ToMeeting(event, userEmail))
	}
	return meetings
}
