package mapper

import (
	"testing"

	"meetbrief-api/modules/meeting/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func briefingWith(attendees ...dto.BriefingAttendee) *dto.BriefingSource {
	return &dto.BriefingSource{
		Companies: map[string]dto.BriefingCompany{
			"Acme": {Attendees: attendees},
		},
	}
}

func enrichedWith(attendees ...dto.EnrichedAttendee) *dto.EnrichedSource {
	return &dto.EnrichedSource{
		Companies: map[string]dto.EnrichedCompany{
			"Acme": {Attendees: attendees},
		},
	}
}

func TestFlattenEnrichment_MatchesByLinkedinFirst(t *testing.T) {
	briefing := briefingWith(dto.BriefingAttendee{
		FirstName:   "Alice",
		LastName:    "Smith",
		Email:       "alice@acme.com",
		LinkedinURL: "https://www.linkedin.com/in/alicesmith/",
	})
	enriched := enrichedWith(
		// Same name and email as the briefing row, wrong profile.
		dto.EnrichedAttendee{
			FirstName: "Alice", LastName: "Smith", Email: "alice@acme.com",
			LinkedinURL: "linkedin.com/in/other-alice",
			Headline:    "wrong match",
		},
		// Different casing/scheme, same profile.
		dto.EnrichedAttendee{
			FirstName: "A.", LastName: "S.",
			LinkedinURL: "http://LinkedIn.com/in/AliceSmith",
			Headline:    "VP Engineering",
		},
	)

	details := FlattenEnrichment(briefing, enriched)

	require.Len(t, details, 1)
	assert.Equal(t, "VP Engineering", details[0].Headline)
}

func TestFlattenEnrichment_FallsBackToNameThenEmail(t *testing.T) {
	briefing := briefingWith(
		dto.BriefingAttendee{FirstName: "Bob", LastName: "Jones", Email: "bob@acme.com"},
		dto.BriefingAttendee{Email: "carol@acme.com"},
	)
	enriched := enrichedWith(
		dto.EnrichedAttendee{FirstName: "bob", LastName: "JONES", Headline: "matched by name", TenureMonths: 27},
		dto.EnrichedAttendee{Email: "Carol@Acme.com", Headline: "matched by email"},
	)

	details := FlattenEnrichment(briefing, enriched)

	require.Len(t, details, 2)
	assert.Equal(t, "Bob Jones", details[0].Name)
	assert.Equal(t, "matched by name", details[0].Headline)
	assert.Equal(t, "2 years, 3 months", details[0].Tenure)

	assert.Equal(t, "Unknown", details[1].Name)
	assert.Equal(t, "matched by email", details[1].Headline)
}

func TestFlattenEnrichment_BriefingIsTheRoster(t *testing.T) {
	briefing := briefingWith(dto.BriefingAttendee{FirstName: "Dana", LastName: "White"})
	enriched := enrichedWith(
		dto.EnrichedAttendee{FirstName: "Someone", LastName: "Unrelated", Headline: "extra"},
	)

	details := FlattenEnrichment(briefing, enriched)

	// Unmatched enrichment rows never create cards of their own.
	require.Len(t, details, 1)
	assert.Equal(t, "Dana White", details[0].Name)
	assert.Empty(t, details[0].Headline)
}

func TestFlattenEnrichment_NilSources(t *testing.T) {
	assert.Nil(t, FlattenEnrichment(nil, nil))
	assert.Nil(t, FlattenEnrichment(&dto.BriefingSource{}, nil))

	briefing := briefingWith(dto.BriefingAttendee{FirstName: "Eve"})
	details := FlattenEnrichment(briefing, nil)
	require.Len(t, details, 1)
	assert.Equal(t, "Eve", details[0].Name)
}

func TestFormatTenure(t *testing.T) {
	assert.Equal(t, "", FormatTenure(0))
	assert.Equal(t, "", FormatTenure(-3))
	assert.Equal(t, "1 month", FormatTenure(1))
	assert.Equal(t, "5 months", FormatTenure(5))
	assert.Equal(t, "1 year", FormatTenure(12))
	assert.Equal(t, "2 years", FormatTenure(24))
	assert.Equal(t, "2 years, 1 month", FormatTenure(25))
	assert.Equal(t, "1 year, 6 months", FormatTenure(18))
}

func TestCollectInsights_DedupesAcrossCompanies(t *testing.T) {
	briefing := &dto.BriefingSource{
		Companies: map[string]dto.BriefingCompany{
			"Globex": {Insights: []string{"Raised Series B", "Hiring in EMEA"}},
			"Acme":   {Insights: []string{"Hiring in EMEA", "  ", "New CTO"}},
		},
	}

	got := CollectInsights(briefing)

	// Companies iterate alphabetically, so Acme's insights come first.
	assert.Equal(t, []string{"Hiring in EMEA", "New CTO", "Raised Series B"}, got)
}

func TestPrimaryCompany(t *testing.T) {
	assert.Nil(t, PrimaryCompany(nil))
	assert.Nil(t, PrimaryCompany(&dto.BriefingSource{}))

	briefing := &dto.BriefingSource{
		Companies: map[string]dto.BriefingCompany{
			"Globex": {Overview: "globex overview"},
			"Acme":   {Overview: "acme overview"},
		},
	}

	info := PrimaryCompany(briefing)
	require.NotNil(t, info)
	assert.Equal(t, "Acme", info.Name)
	assert.Equal(t, "acme overview", info.Overview)
}
