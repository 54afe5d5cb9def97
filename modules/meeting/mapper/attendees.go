package mapper

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	// One trailing parenthetical group, e.g. the "(accepted)" status suffix.
	trailingParenPattern = regexp.MustCompile(`\s*\([^()]*\)\s*$`)
)

// ExtractAttendees normalizes the attendees field of a raw calendar event
// into display strings, dropping the signed-in user.
//
// The field arrives either as an array (of strings or objects with
// name/email keys) or as one string of the form
// "Name (email) (status); Name2 (email2) (status2)". Matching the current
// user is heuristic: the embedded email wins when one is present, otherwise
// the whole lowercased entry is compared. Order is preserved, duplicates
// removed.
func ExtractAttendees(raw any, userEmail string) []string {
	entries := normalizeEntries(raw)

	selfEmail := strings.ToLower(strings.TrimSpace(userEmail))
	result := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		// Self-check runs on the raw entry so an embedded email still
		// matches when there is no trailing status to strip.
		if isSelf(entry, selfEmail) {
			continue
		}
		display := strings.TrimSpace(trailingParenPattern.ReplaceAllString(entry, ""))
		if display == "" {
			continue
		}
		key := strings.ToLower(display)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, display)
	}
	return result
}

func normalizeEntries(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return splitEntries(v)
	case []string:
		return v
	case []any:
		entries := make([]string, 0, len(v))
		for _, item := range v {
			if s := entryFromItem(item); s != "" {
				entries = append(entries, s)
			}
		}
		return entries
	default:
		return nil
	}
}

func splitEntries(s string) []string {
	parts := strings.Split(s, ";")
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

// entryFromItem renders one array element: strings pass through, objects
// become "Name (email)" from whichever keys are present.
func entryFromItem(item any) string {
	switch v := item.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		name := firstString(v, "name", "display_name", "displayName")
		email := firstString(v, "email", "email_address")
		switch {
		case name != "" && email != "":
			return name + " (" + email + ")"
		case email != "":
			return email
		default:
			return name
		}
	default:
		return ""
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func isSelf(display, selfEmail string) bool {
	if selfEmail == "" {
		return false
	}
	if embedded := emailPattern.FindString(display); embedded != "" {
		return strings.ToLower(embedded) == selfEmail
	}
	return strings.ToLower(display) == selfEmail
}
