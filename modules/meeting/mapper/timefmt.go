package mapper

import (
	"fmt"
	"math"
	"time"
)

const (
	unknownTime     = "Unknown time"
	unknownDuration = "Not available"
)

// ParseEventTime parses whatever timestamp shape the heart API sends.
// Returns nil (never an error) on anything unparsable; callers render the
// "Unknown" fallbacks.
func ParseEventTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatEventTime renders a start time as "Today at 3:00 PM",
// "Tomorrow at 9:30 AM", or "Jan 2 at 11:00 AM".
func FormatEventTime(start *time.Time) string {
	return formatEventTimeAt(start, time.Now())
}

func formatEventTimeAt(start *time.Time, now time.Time) string {
	if start == nil {
		return unknownTime
	}

	t := start.In(now.Location())
	clock := t.Format("3:04 PM")

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())

	switch int(day.Sub(today).Hours() / 24) {
	case 0:
		return "Today at " + clock
	case 1:
		return "Tomorrow at " + clock
	default:
		return t.Format("Jan 2") + " at " + clock
	}
}

// FormatDuration renders the span between start and end as "45 min",
// "1 hr", or "1 hr 30 min". Minutes are rounded, not truncated.
func FormatDuration(start, end *time.Time) string {
	if start == nil || end == nil {
		return unknownDuration
	}

	minutes := int(math.Round(end.Sub(*start).Minutes()))
	if minutes < 0 {
		return unknownDuration
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, rest)
}
