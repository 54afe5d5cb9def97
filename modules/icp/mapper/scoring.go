package mapper

import (
	"math"
	"regexp"
)

// Named criteria recognized inside freeform ICP reason strings. The backend
// sends reasons as prose ("Company size outside target range"), so criteria
// are counted by pattern, not by structured field.
var criterionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(size|employees?|headcount)\b`),       // Size
	regexp.MustCompile(`(?i)\b(region|geograph\w*|country)\b`),      // Region
	regexp.MustCompile(`(?i)\b(budget|spend\w*|revenue)\b`),         // Budget
	regexp.MustCompile(`(?i)\b(industry|sector|vertical)\b`),        // Industry
	regexp.MustCompile(`(?i)\b(growth|growing|expansion|scaling)\b`), // Growth
}

// CountCriteria returns how many of the named criteria appear at least once
// across the given reason strings.
func CountCriteria(reasons []string) int {
	count := 0
	for _, pattern := range criterionPatterns {
		for _, reason := range reasons {
			if pattern.MatchString(reason) {
				count++
				break
			}
		}
	}
	return count
}

// ComputeScore is the display-banding fit score heuristic.
//
// Fit meetings score 12 + min(matchingCriteria, 3), landing in [12, 15].
// Non-fit meetings score max(0, floor(7 - reasons/8*7 - nonMatching*0.5)),
// landing in [0, 7] and shrinking as the backend supplies more reasons
// against the fit. The arithmetic is a compatibility constant: existing
// score bands depend on these exact numbers.
func ComputeScore(fitsICP bool, matchingCriteria, nonMatchingCriteria, nonICPReasonCount int) int {
	if fitsICP {
		if matchingCriteria > 3 {
			matchingCriteria = 3
		}
		if matchingCriteria < 0 {
			matchingCriteria = 0
		}
		return 12 + matchingCriteria
	}

	score := 7.0 - float64(nonICPReasonCount)/8.0*7.0 - float64(nonMatchingCriteria)*0.5
	if score < 0 {
		return 0
	}
	return int(math.Floor(score))
}

// ScoreEvent scores a meeting from the raw backend verdict: the fit flag
// plus the two freeform reason lists.
func ScoreEvent(fitsICP bool, icpReasons, nonICPReasons []string) int {
	if fitsICP {
		return ComputeScore(true, CountCriteria(icpReasons), 0, 0)
	}
	return ComputeScore(false, 0, CountCriteria(nonICPReasons), len(nonICPReasons))
}
