package seance

import "time"

// ===============================
// Service window
// ===============================

const (
	// Daily service window [08:00, 20:00).
	ServiceOpen  = "08:00"
	ServiceClose = "20:00"

	// BufferMinutes is the exclusivity zone around an existing seance's
	// start time. Inclusive on both ends: exactly 10 minutes apart is
	// still too close.
	BufferMinutes = 10

	// SlotStepMinutes is the grid used when listing free start times.
	SlotStepMinutes = 10

	TimeLayout = "15:04"
	DateLayout = "2006-01-02"
)

// ParseStartTime converts an "HH:MM" start time to minutes since midnight.
func ParseStartTime(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// WithinServiceWindow reports whether minutes falls in [08:00, 20:00).
func WithinServiceWindow(minutes int) bool {
	open, _ := ParseStartTime(ServiceOpen)
	close, _ := ParseStartTime(ServiceClose)
	return minutes >= open && minutes < close
}

// SlotInstant combines a calendar date and an "HH:MM" start time into a
// timezone-aware instant in loc. Callers validate the time string first.
func SlotInstant(date time.Time, startTime string, loc *time.Location) time.Time {
	minutes, _ := ParseStartTime(startTime)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		minutes/60, minutes%60, 0, 0,
		loc,
	)
}

// IsWeekend reports whether date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
