package utils

import (
	"strconv"
	"strings"
)

// ParseCount converts a scraped count ("42", "1,402", " 7 ") to an int,
// tolerating thousands separators and surrounding whitespace. Returns
// fallback when the text carries no parseable number.
func ParseCount(text string, fallback int) int {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, ",", "")
	if text == "" {
		return fallback
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fallback
	}
	return n
}

// FirstToken returns the first whitespace-separated token of text, or ""
// when there is none.
func FirstToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
