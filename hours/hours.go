package hours

import (
	"strings"
	"time"
)

// DayOfWeek holds the canonical weekday names, Sunday-first, matching the
// keys used in the catalog's opening_hours mapping. time.Weekday already
// orders Sunday=0, so the index lines up directly.
var DayOfWeek = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ClosedToken is the literal value meaning the truck does not open that
// day. Compared case-insensitively.
const ClosedToken = "closed"

// DayStatus classifies a single day's opening-hours entry.
type DayStatus int

const (
	// DayClosed is a well-formed closed day: the literal token, or no
	// entry at all.
	DayClosed DayStatus = iota
	// DayWindow is a well-formed "HH:MM-HH:MM" window.
	DayWindow
	// DayMalformed is an entry that failed to parse. Evaluation treats it
	// exactly like DayClosed, but callers and tests can tell them apart.
	DayMalformed
)

// ClockTime is a wall-clock minute of day.
type ClockTime struct {
	Hour   int
	Minute int
}

// DayHours is the parse result for one weekday's entry.
type DayHours struct {
	Status DayStatus
	Open   ClockTime
	Close  ClockTime
}

// ParseDay classifies a raw opening_hours value. Malformed input is never
// an error: the product treats it as closed and keeps rendering.
func ParseDay(raw string) DayHours {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, ClosedToken) {
		return DayHours{Status: DayClosed}
	}

	openStr, closeStr, found := strings.Cut(trimmed, "-")
	if !found || openStr == "" || closeStr == "" {
		return DayHours{Status: DayMalformed}
	}

	open, ok := parseClock(openStr)
	if !ok {
		return DayHours{Status: DayMalformed}
	}
	closeAt, ok := parseClock(closeStr)
	if !ok {
		return DayHours{Status: DayMalformed}
	}

	return DayHours{Status: DayWindow, Open: open, Close: closeAt}
}

func parseClock(s string) (ClockTime, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return ClockTime{}, false
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, true
}

// IsOpen reports whether a truck with the given opening-hours mapping is
// open at the given instant. The window is open-inclusive and
// close-exclusive: a truck closing at 14:00 is not open at exactly 14:00.
// An overnight range (close before open) never matches; the catalog does
// not model spans across midnight.
func IsOpen(openingHours map[string]string, at time.Time) bool {
	if len(openingHours) == 0 {
		return false
	}

	dayName := DayOfWeek[int(at.Weekday())]
	entry, ok := openingHours[dayName]
	if !ok {
		return false
	}

	parsed := ParseDay(entry)
	if parsed.Status != DayWindow {
		return false
	}

	openAt := onDate(at, parsed.Open)
	closeAt := onDate(at, parsed.Close)

	return !at.Before(openAt) && at.Before(closeAt)
}

// onDate pins a wall-clock time to the calendar date of ref.
func onDate(ref time.Time, c ClockTime) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), c.Hour, c.Minute, 0, 0, ref.Location())
}
