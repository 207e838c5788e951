package chat

import (
	"strings"
	"time"
)

// datePatterns is the fixed priority order for loose date input. ISO wins;
// ambiguous strings like 03-04-2026 resolve to the first pattern that
// parses, so day-month order beats month-day order.
var datePatterns = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"01-02-2006",
	"01/02/2006",
}

// parseDate tries each pattern in order and returns the first success, as a
// date truncated to midnight UTC. The boolean is false when no pattern
// matches; a bad date is an expected input, not an error to propagate.
func parseDate(input string) (time.Time, bool) {
	input = strings.TrimSpace(input)
	for _, layout := range datePatterns {
		if t, err := time.Parse(layout, input); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
