package mapper

import (
	"regexp"
	"strings"
)

var (
	// Title patterns tried in order: "... - Company", "...: Company",
	// "Company - ...".
	trailingDashPattern  = regexp.MustCompile(`-\s*([A-Z][\w&.,' ]+?)\s*$`)
	trailingColonPattern = regexp.MustCompile(`:\s*([A-Z][\w&.,' ]+?)\s*$`)
	leadingDashPattern   = regexp.MustCompile(`^\s*([A-Z][\w&.,' ]+?)\s*-`)
	capitalizedWord      = regexp.MustCompile(`\b[A-Z][a-zA-Z]+\b`)
)

// InferCompanyName guesses a company name from a meeting title. Best effort
// only, used for display copy; returns "" when nothing plausible is found.
func InferCompanyName(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	for _, pattern := range []*regexp.Regexp{trailingDashPattern, trailingColonPattern, leadingDashPattern} {
		if m := pattern.FindStringSubmatch(title); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}

	// Fall back to the first capitalized word of at least two letters.
	return capitalizedWord.FindString(title)
}

// DetectPlatform classifies the meeting location string.
func DetectPlatform(location string) string {
	loc := strings.ToLower(strings.TrimSpace(location))
	switch {
	case loc == "":
		return "Unknown"
	case strings.Contains(loc, "zoom"):
		return "Zoom"
	case strings.Contains(loc, "meet.google") || strings.Contains(loc, "google meet") || strings.Contains(loc, "hangout"):
		return "Google Meet"
	case strings.Contains(loc, "teams"):
		return "Microsoft Teams"
	case strings.Contains(loc, "webex"):
		return "Webex"
	case strings.HasPrefix(loc, "http"):
		return "Online"
	default:
		return "In person"
	}
}
