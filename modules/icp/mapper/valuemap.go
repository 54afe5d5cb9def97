package mapper

// Frontend range <-> backend enumeration tables for ICP criteria.
//
// The tables are asymmetric and lossy on purpose: several frontend ranges
// collapse into one backend bucket (201-500 and 501-1000 are both "large"),
// so a round trip can come back as a different range than the one saved.
// This mirrors the behavior existing saved criteria depend on; do not
// "fix" the collapse without a data migration.

var employeeSizeToBackend = map[string]string{
	"1-10":     "micro",
	"11-50":    "small",
	"51-200":   "medium",
	"201-500":  "large",
	"501-1000": "large",
	"1000+":    "enterprise",
}

// Reverse map picks one canonical range per bucket.
var employeeSizeToFrontend = map[string]string{
	"micro":      "1-10",
	"small":      "11-50",
	"medium":     "51-200",
	"large":      "201-500",
	"enterprise": "1000+",
}

var foundedYearToBackend = map[string]string{
	"2020-present": "startup",
	"2015-2019":    "startup",
	"2010-2014":    "established",
	"2000-2009":    "mature",
	"before-2000":  "legacy",
}

var foundedYearToFrontend = map[string]string{
	"startup":     "2020-present",
	"established": "2010-2014",
	"mature":      "2000-2009",
	"legacy":      "before-2000",
}

// EmployeeSizesToBackend maps frontend ranges to backend buckets, dropping
// unknown values and collapsing duplicates.
func EmployeeSizesToBackend(ranges []string) []string {
	return mapValues(ranges, employeeSizeToBackend)
}

func EmployeeSizesToFrontend(buckets []string) []string {
	return mapValues(buckets, employeeSizeToFrontend)
}

func FoundedYearsToBackend(ranges []string) []string {
	return mapValues(ranges, foundedYearToBackend)
}

func FoundedYearsToFrontend(buckets []string) []string {
	return mapValues(buckets, foundedYearToFrontend)
}

func mapValues(values []string, table map[string]string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		mapped, ok := table[v]
		if !ok || seen[mapped] {
			continue
		}
		seen[mapped] = true
		out = append(out, mapped)
	}
	return out
}
