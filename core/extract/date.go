package extract

import (
	"strings"
	"time"
)

// Steam renders workshop publish dates in a UTC-8 fixed offset; the stored
// value is normalized to UTC by adding this.
const steamUTCOffset = 8 * time.Hour

// Workshop date templates. Steam renders day-first or month-first depending
// on the locale it decided to serve, and drops the year for dates in the
// current year. Day-first templates are tried before month-first ones.
var workshopDateLayouts = []struct {
	layout  string
	hasYear bool
}{
	{"2 Jan, 2006 @ 3:04pm", true},
	{"2 Jan @ 3:04pm", false},
	{"Jan 2, 2006 @ 3:04pm", true},
	{"Jan 2 @ 3:04pm", false},
}

// ParseWorkshopDate parses a workshop publish date as rendered by Steam and
// returns the UTC timestamp. A year-less date is assumed to fall in the year
// of now. Returns false when no template matches.
func ParseWorkshopDate(text string, now time.Time) (time.Time, bool) {
	// Month names parse case-insensitively but the am/pm marker does not;
	// Steam renders it lowercase, so normalize the whole string.
	text = strings.ToLower(strings.TrimSpace(text))
	for _, l := range workshopDateLayouts {
		parsed, err := time.Parse(l.layout, text)
		if err != nil {
			continue
		}
		if !l.hasYear {
			parsed = parsed.AddDate(now.Year(), 0, 0)
		}
		return parsed.Add(steamUTCOffset).UTC(), true
	}
	return time.Time{}, false
}
