package tokens

import "regexp"

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// ExtractYear returns the first standalone four-digit run found in date,
// falling back to dateShort, or the empty string when neither contains one.
// Longer digit runs do not match: "12345" carries no year.
func ExtractYear(date, dateShort string) string {
	if year := yearPattern.FindString(date); year != "" {
		return year
	}
	return yearPattern.FindString(dateShort)
}
