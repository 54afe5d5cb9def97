package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCompanyName(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Quarterly Review - Acme Corp", "Acme Corp"},
		{"Kickoff: Globex", "Globex"},
		{"Initech - weekly sync", "Initech"},
		{"intro call with Hooli team", "Hooli"},
		{"catch up", ""},
		{"", ""},
		{"   ", ""},
		{"1:1 with a friend", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, InferCompanyName(tc.title), "title %q", tc.title)
	}
}

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		location string
		want     string
	}{
		{"https://zoom.us/j/123456", "Zoom"},
		{"https://meet.google.com/abc-defg-hij", "Google Meet"},
		{"Microsoft Teams Meeting", "Microsoft Teams"},
		{"https://acme.webex.com/meet/alice", "Webex"},
		{"https://example.com/room/1", "Online"},
		{"Conference Room 4B", "In person"},
		{"", "Unknown"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectPlatform(tc.location), "location %q", tc.location)
	}
}
