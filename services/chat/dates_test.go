package chat

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), true},
		// Ambiguous strings resolve day-first.
		{"03-04-2026", time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC), true},
		{"03/04/2026", time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC), true},
		// Month-first parses only when day-first cannot.
		{"12/25/2026", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), true},
		{"12-25-2026", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), true},
		{"  2026-03-15  ", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"next tuesday", time.Time{}, false},
		{"2026-13-01", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tc := range cases {
		got, ok := parseDate(tc.input)
		if ok != tc.ok {
			t.Errorf("parseDate(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
