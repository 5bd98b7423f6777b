package hours

import (
	"testing"
	"time"
)

// monday returns a fixed Monday (2024-04-01) at the given wall-clock time.
func monday(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	at := time.Date(2024, time.April, 1, hour, minute, 0, 0, time.UTC)
	if at.Weekday() != time.Monday {
		t.Fatalf("expected fixture date to be a Monday, got %s", at.Weekday())
	}
	return at
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		status DayStatus
	}{
		{name: "Well-formed window", raw: "09:00-17:00", status: DayWindow},
		{name: "Closed token", raw: "closed", status: DayClosed},
		{name: "Closed token upper case", raw: "CLOSED", status: DayClosed},
		{name: "Closed token mixed case", raw: "Closed", status: DayClosed},
		{name: "Empty entry", raw: "", status: DayClosed},
		{name: "Missing close half", raw: "09:00-", status: DayMalformed},
		{name: "Missing open half", raw: "-17:00", status: DayMalformed},
		{name: "No separator", raw: "09:00", status: DayMalformed},
		{name: "Garbage", raw: "whenever", status: DayMalformed},
		{name: "Out of range hour", raw: "25:00-26:00", status: DayMalformed},
		{name: "Out of range minute", raw: "09:61-17:00", status: DayMalformed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parsed := ParseDay(test.raw)
			if parsed.Status != test.status {
				t.Errorf("ParseDay(%q).Status = %v, want %v", test.raw, parsed.Status, test.status)
			}
		})
	}
}

func TestParseDay_WindowValues(t *testing.T) {
	parsed := ParseDay("09:30-17:45")

	if parsed.Status != DayWindow {
		t.Fatalf("expected DayWindow, got %v", parsed.Status)
	}
	if parsed.Open.Hour != 9 || parsed.Open.Minute != 30 {
		t.Errorf("Open = %02d:%02d, want 09:30", parsed.Open.Hour, parsed.Open.Minute)
	}
	if parsed.Close.Hour != 17 || parsed.Close.Minute != 45 {
		t.Errorf("Close = %02d:%02d, want 17:45", parsed.Close.Hour, parsed.Close.Minute)
	}
}

func TestIsOpen_InsideWindow(t *testing.T) {
	// Arrange
	openingHours := map[string]string{"Monday": "09:00-17:00"}

	// Act + Assert
	if !IsOpen(openingHours, monday(t, 10, 0)) {
		t.Error("expected open at Monday 10:00")
	}
	if IsOpen(openingHours, monday(t, 18, 0)) {
		t.Error("expected closed at Monday 18:00")
	}
}

func TestIsOpen_Boundaries(t *testing.T) {
	openingHours := map[string]string{"Monday": "09:00-14:00"}

	// Open boundary is inclusive.
	if !IsOpen(openingHours, monday(t, 9, 0)) {
		t.Error("expected open at exactly 09:00")
	}
	// Close boundary is exclusive: closing at 14:00 means not open at 14:00.
	if IsOpen(openingHours, monday(t, 14, 0)) {
		t.Error("expected closed at exactly 14:00")
	}
	if !IsOpen(openingHours, monday(t, 13, 59)) {
		t.Error("expected open at 13:59")
	}
}

func TestIsOpen_ClosedCases(t *testing.T) {
	tests := []struct {
		name         string
		openingHours map[string]string
	}{
		{name: "No opening hours at all", openingHours: nil},
		{name: "Day absent", openingHours: map[string]string{"Tuesday": "09:00-17:00"}},
		{name: "Closed token", openingHours: map[string]string{"Monday": "closed"}},
		{name: "Closed token any case", openingHours: map[string]string{"Monday": "cLoSeD"}},
		{name: "Malformed entry", openingHours: map[string]string{"Monday": "9am to 5pm"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if IsOpen(test.openingHours, monday(t, 10, 0)) {
				t.Error("expected closed")
			}
		})
	}
}

func TestIsOpen_OvernightRangeNeverMatches(t *testing.T) {
	// Close before open is not treated as spanning midnight: the whole day
	// evaluates to closed, at every instant.
	openingHours := map[string]string{"Monday": "22:00-02:00"}

	for _, at := range []time.Time{
		monday(t, 1, 0),
		monday(t, 10, 0),
		monday(t, 22, 0),
		monday(t, 23, 30),
	} {
		if IsOpen(openingHours, at) {
			t.Errorf("expected closed at %s for overnight range", at.Format("15:04"))
		}
	}
}

func TestDayOfWeek_SundayFirst(t *testing.T) {
	if DayOfWeek[0] != "Sunday" || DayOfWeek[6] != "Saturday" {
		t.Errorf("DayOfWeek ordering is wrong: %v", DayOfWeek)
	}

	// The index must line up with time.Weekday.
	sunday := time.Date(2024, time.April, 7, 12, 0, 0, 0, time.UTC)
	if sunday.Weekday() != time.Sunday {
		t.Fatalf("fixture date is not a Sunday")
	}
	if DayOfWeek[int(sunday.Weekday())] != "Sunday" {
		t.Errorf("weekday index mismatch")
	}
}
