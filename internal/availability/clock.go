package availability

import (
	"fmt"
	"time"
)

// MinutesPerDay is the number of minutes in a calendar day; valid minute-of-day
// values are in [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" 24h clock string into a minute-of-day integer.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock formats a minute-of-day integer as an "HH:MM" 24h clock string.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
