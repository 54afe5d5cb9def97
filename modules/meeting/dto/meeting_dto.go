package dto

// ========== Raw upstream shapes (heart API) ==========

// CalendarEvent is an event exactly as the heart API returns it. Attendees
// is either an array (objects or strings) or one semicolon-delimited string,
// so it stays untyped until the mapper normalizes it.
type CalendarEvent struct {
	EventID             string          `json:"event_id"`
	Event               string          `json:"event"` // title
	Start               string          `json:"start"`
	End                 string          `json:"end"`
	Location            string          `json:"location"`
	Attendees           any             `json:"attendees"`
	EnrichmentStatus    string          `json:"enrichment_status"`
	BriefingSource      *BriefingSource `json:"briefing_source,omitempty"`
	EnrichedSource      *EnrichedSource `json:"enriched_source,omitempty"`
	EnrichedReadyToSend bool            `json:"enriched_ready_to_send"`
	FitsICP             *bool           `json:"fits_icp,omitempty"`
	ICPReasons          []string        `json:"icp_reasons,omitempty"`
	NonICPReasons       []string        `json:"non_icp_reasons,omitempty"`
}

type CalendarEventsResponse struct {
	Events []CalendarEvent `json:"events"`
}

// SyncResponse is the heart API's calendar sync envelope. Business failures
// come back inside a 200 as success=false.
type SyncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Synced  int    `json:"synced,omitempty"`
}

// BriefingSource is the backend research blob, keyed by company name.
type BriefingSource struct {
	Companies map[string]BriefingCompany `json:"companies"`
}

type BriefingCompany struct {
	Overview  string             `json:"overview"`
	Insights  []string           `json:"insights"`
	Attendees []BriefingAttendee `json:"attendees"`
}

type BriefingAttendee struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	LinkedinURL string `json:"linkedin_url"`
}

// EnrichedSource is the third-party enrichment blob, same company keying.
type EnrichedSource struct {
	Companies map[string]EnrichedCompany `json:"companies"`
}

type EnrichedCompany struct {
	Attendees []EnrichedAttendee `json:"attendees"`
}

type EnrichedAttendee struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	LinkedinURL      string `json:"linkedin_url"`
	Headline         string `json:"headline"`
	Location         string `json:"location"`
	CurrentPosition  string `json:"current_position"`
	PreviousPosition string `json:"previous_position"`
	TenureMonths     int    `json:"tenure_months"`
}

// ========== View-models ==========

// Meeting is the display-ready projection of a CalendarEvent.
type Meeting struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Time             string           `json:"time"`
	Duration         string           `json:"duration"`
	Platform         string           `json:"platform"`
	Attendees        []string         `json:"attendees"`
	AttendeeDetails  []AttendeeDetail `json:"attendee_details,omitempty"`
	Insights         []string         `json:"insights,omitempty"`
	CompanyInfo      *CompanyInfo     `json:"company_info,omitempty"`
	ICPScore         *int             `json:"icp_score,omitempty"`
	ReadyToSend      bool             `json:"ready_to_send"`
	EnrichmentStatus string           `json:"enrichment_status,omitempty"`
}

// AttendeeDetail is one enriched per-person card.
type AttendeeDetail struct {
	Name             string `json:"name"`
	Email            string `json:"email,omitempty"`
	Role             string `json:"role,omitempty"`
	Headline         string `json:"headline,omitempty"`
	Location         string `json:"location,omitempty"`
	CurrentPosition  string `json:"current_position,omitempty"`
	PreviousPosition string `json:"previous_position,omitempty"`
	Tenure           string `json:"tenure,omitempty"`
	LinkedinURL      string `json:"linkedin_url,omitempty"`
}

type CompanyInfo struct {
	Name     string `json:"name"`
	Overview string `json:"overview,omitempty"`
}

type MeetingListResponse struct {
	Meetings []Meeting `json:"meetings"`
}

// DashboardResponse summarizes the upcoming meetings for the landing screen.
type DashboardResponse struct {
	UpcomingMeetings []Meeting `json:"upcoming_meetings"`
	TotalMeetings    int       `json:"total_meetings"`
	ReadyToSend      int       `json:"ready_to_send"`
	AverageICPScore  *float64  `json:"average_icp_score,omitempty"`
}
