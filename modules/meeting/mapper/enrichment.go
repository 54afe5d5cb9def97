package mapper

import (
	"fmt"
	"sort"
	"strings"

	"meetbrief-api/modules/meeting/dto"
)

// FlattenEnrichment merges the per-company briefing attendees with their
// third-party enrichment records into flat display cards.
//
// Pairs are matched by LinkedIn URL first, then by first+last name, then by
// email, in that priority order. Enrichment entries with no briefing
// counterpart are ignored: the briefing list is the roster, enrichment only
// decorates it.
func FlattenEnrichment(briefing *dto.BriefingSource, enriched *dto.EnrichedSource) []dto.AttendeeDetail {
	if briefing == nil || len(briefing.Companies) == 0 {
		return nil
	}

	var details []dto.AttendeeDetail
	for _, company := range sortedCompanyNames(briefing.Companies) {
		var pool []dto.EnrichedAttendee
		if enriched != nil {
			if ec, ok := enriched.Companies[company]; ok {
				pool = ec.Attendees
			}
		}

		for _, ba := range briefing.Companies[company].Attendees {
			detail := dto.AttendeeDetail{
				Name:        displayName(ba.FirstName, ba.LastName),
				Email:       ba.Email,
				Role:        ba.Role,
				LinkedinURL: ba.LinkedinURL,
			}

			if match := findEnrichedMatch(ba, pool); match != nil {
				detail.Headline = match.Headline
				detail.Location = match.Location
				detail.CurrentPosition = match.CurrentPosition
				detail.PreviousPosition = match.PreviousPosition
				detail.Tenure = FormatTenure(match.TenureMonths)
				if detail.LinkedinURL == "" {
					detail.LinkedinURL = match.LinkedinURL
				}
			}
			details = append(details, detail)
		}
	}
	return details
}

func findEnrichedMatch(ba dto.BriefingAttendee, pool []dto.EnrichedAttendee) *dto.EnrichedAttendee {
	if len(pool) == 0 {
		return nil
	}

	if url := normalizeLinkedin(ba.LinkedinURL); url != "" {
		for i := range pool {
			if normalizeLinkedin(pool[i].LinkedinURL) == url {
				return &pool[i]
			}
		}
	}

	first, last := strings.ToLower(strings.TrimSpace(ba.FirstName)), strings.ToLower(strings.TrimSpace(ba.LastName))
	if first != "" || last != "" {
		for i := range pool {
			if strings.ToLower(strings.TrimSpace(pool[i].FirstName)) == first &&
				strings.ToLower(strings.TrimSpace(pool[i].LastName)) == last {
				return &pool[i]
			}
		}
	}

	if email := strings.ToLower(strings.TrimSpace(ba.Email)); email != "" {
		for i := range pool {
			if strings.ToLower(strings.TrimSpace(pool[i].Email)) == email {
				return &pool[i]
			}
		}
	}
	return nil
}

func normalizeLinkedin(url string) string {
	url = strings.ToLower(strings.TrimSpace(url))
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "www.")
	return strings.TrimRight(url, "/")
}

// FormatTenure renders a month count as "2 years, 3 months", dropping zero
// components. Zero or negative months render as "".
func FormatTenure(months int) string {
	if months <= 0 {
		return ""
	}
	years, rest := months/12, months%12
	switch {
	case years == 0:
		return plural(rest, "month")
	case rest == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + ", " + plural(rest, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func displayName(first, last string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" {
		return "Unknown"
	}
	return name
}

// CollectInsights gathers the deduplicated insight strings across all
// briefing companies, company order deterministic.
func CollectInsights(briefing *dto.BriefingSource) []string {
	if briefing == nil {
		return nil
	}

	var insights []string
	seen := make(map[string]bool)
	for _, company := range sortedCompanyNames(briefing.Companies) {
		for _, insight := range briefing.Companies[company].Insights {
			insight = strings.TrimSpace(insight)
			if insight == "" || seen[insight] {
				continue
			}
			seen[insight] = true
			insights = append(insights, insight)
		}
	}
	return insights
}

// PrimaryCompany returns the first (alphabetically) briefed company, which
// the dashboard shows as the meeting's company card.
func PrimaryCompany(briefing *dto.BriefingSource) *dto.CompanyInfo {
	if briefing == nil || len(briefing.Companies) == 0 {
		return nil
	}
	name := sortedCompanyNames(briefing.Companies)[0]
	return &dto.CompanyInfo{
		Name:     name,
		Overview: briefing.Companies[name].Overview,
	}
}

func sortedCompanyNames(companies map[string]dto.BriefingCompany) []string {
	names := make([]string, 0, len(companies))
	for name := range companies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
