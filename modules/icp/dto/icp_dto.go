package dto

import "time"

// ========== Criteria DTOs (frontend shapes) ==========

type CriteriaRequest struct {
	EmployeeSizes []string `json:"employee_sizes"`
	FoundedYears  []string `json:"founded_years"`
	OtherCriteria string   `json:"other_criteria"`
	Enabled       bool     `json:"enabled"`
}

type CriteriaResponse struct {
	EmployeeSizes []string   `json:"employee_sizes"`
	FoundedYears  []string   `json:"founded_years"`
	OtherCriteria string     `json:"other_criteria"`
	Enabled       bool       `json:"enabled"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// BackendCriteria is the heart API's enumeration shape. The frontend range
// -> backend bucket mapping is lossy; see mapper/valuemap.go.
type BackendCriteria struct {
	EmployeeBuckets []string `json:"employee_buckets"`
	FoundedBuckets  []string `json:"founded_buckets"`
	OtherCriteria   string   `json:"other_criteria"`
	Enabled         bool     `json:"enabled"`
}

// ========== Preference question DTOs ==========

// PreferenceQuestion is the heart API's preference store entry. The criteria
// round-trip rides on the same store; answers pass through untranslated.
type PreferenceQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuestionsRequest struct {
	Questions []PreferenceQuestion `json:"questions"`
}

type QuestionsResponse struct {
	Questions []PreferenceQuestion `json:"questions"`
}

// ========== Status / analysis DTOs ==========

type StatusResponse struct {
	Enabled          bool       `json:"enabled"`
	AnalyzedMeetings int        `json:"analyzed_meetings"`
	PendingMeetings  int        `json:"pending_meetings"`
	LastAnalyzedAt   *time.Time `json:"last_analyzed_at,omitempty"`
}

type AnalyzeResponse struct {
	Queued int `json:"queued"`
}

type StatsResponse struct {
	FitCount     int      `json:"fit_count"`
	NonFitCount  int      `json:"non_fit_count"`
	AverageScore *float64 `json:"average_score,omitempty"`
	TopReasons   []string `json:"top_reasons,omitempty"`
}
