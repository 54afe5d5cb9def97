package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventTime(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2026-03-15T14:30:00Z", true},
		{"2026-03-15T14:30:00+02:00", true},
		{"2026-03-15T14:30:00", true},
		{"2026-03-15 14:30:00", true},
		{"2026-03-15", true},
		{"", false},
		{"not a time", false},
		{"15/03/2026", false},
	}

	for _, tc := range cases {
		got := ParseEventTime(tc.in)
		if tc.ok {
			require.NotNil(t, got, "input %q", tc.in)
		} else {
			assert.Nil(t, got, "input %q", tc.in)
		}
	}
}

func TestFormatEventTime_RelativeDays(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	today := time.Date(2026, 3, 15, 15, 4, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 3, 16, 9, 30, 0, 0, time.UTC)
	later := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today at 3:04 PM", formatEventTimeAt(&today, now))
	assert.Equal(t, "Tomorrow at 9:30 AM", formatEventTimeAt(&tomorrow, now))
	assert.Equal(t, "Apr 2 at 11:00 AM", formatEventTimeAt(&later, now))
	assert.Equal(t, "Unknown time", formatEventTimeAt(nil, now))
}

func TestFormatEventTime_PastDatesUseAbsolute(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, "Mar 14 at 8:00 AM", formatEventTimeAt(&yesterday, now))
}

func TestFormatDuration(t *testing.T) {
	start := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	at := func(d time.Duration) *time.Time {
		end := start.Add(d)
		return &end
	}

	assert.Equal(t, "45 min", FormatDuration(&start, at(45*time.Minute)))
	assert.Equal(t, "1 hr", FormatDuration(&start, at(time.Hour)))
	assert.Equal(t, "1 hr 30 min", FormatDuration(&start, at(90*time.Minute)))
	assert.Equal(t, "2 hr", FormatDuration(&start, at(2*time.Hour)))
	assert.Equal(t, "0 min", FormatDuration(&start, at(0)))

	// Seconds round to the nearest minute.
	assert.Equal(t, "30 min", FormatDuration(&start, at(29*time.Minute+40*time.Second)))

	assert.Equal(t, "Not available", FormatDuration(nil, at(time.Hour)))
	assert.Equal(t, "Not available", FormatDuration(&start, nil))
	assert.Equal(t, "Not available", FormatDuration(&start, at(-time.Minute)))
}
