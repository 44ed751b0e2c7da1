package textutil

import (
	"strings"
	"time"
)

// dmyLayouts covers the day-month-year spellings seen on the fuel price
// page over time. The page switched between "-" and "/" separators at
// least once.
var dmyLayouts = []string{
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
}

// NormalizeDMY converts a day-month-year date string to ISO year-month-day.
// Returns false when the input does not parse as a real calendar date.
func NormalizeDMY(s string) (string, bool) {
	cleaned := strings.TrimSpace(s)
	for _, layout := range dmyLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
