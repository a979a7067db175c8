package services

import "strings"

// FormatTimestamp normalizes a raw backend timestamp into a fixed-width
// "YYYY-MM-DD HH:MM:SS" display string. Absent or too-short values
// format to the empty string; fractional seconds and anything beyond
// 19 characters are dropped. Never fails.
func FormatTimestamp(raw string) string {
	if len(raw) <= 19 {
		return ""
	}
	return strings.Replace(raw, "T", " ", 1)[:19]
}
