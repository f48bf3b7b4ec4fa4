package seance

import (
	"time"

	"github.com/benjsant/coach-scheduler/internal/models"
)

type TimeSlot struct {
	Start string `json:"start"`
}

// FreeSlots lists the bookable "HH:MM" start times for a coach's day on the
// 10-minute grid, given the seances already on that date. Weekend days have
// no slots; past grid points and anything inside an existing seance's buffer
// window are skipped.
func FreeSlots(existing []models.Seance, date time.Time, now time.Time) []TimeSlot {
	if IsWeekend(date) {
		return []TimeSlot{}
	}

	taken := make([]int, 0, len(existing))
	for _, s := range existing {
		if m, err := ParseStartTime(s.StartTime); err == nil {
			taken = append(taken, m)
		}
	}

	open, _ := ParseStartTime(ServiceOpen)
	close, _ := ParseStartTime(ServiceClose)

	slots := []TimeSlot{}

	for cur := open; cur < close; cur += SlotStepMinutes {
		start := time.Date(
			date.Year(), date.Month(), date.Day(),
			cur/60, cur%60, 0, 0,
			now.Location(),
		)
		if start.Before(now) {
			continue
		}

		clash := false
		for _, m := range taken {
			delta := m - cur
			if delta < 0 {
				delta = -delta
			}
			if delta <= BufferMinutes {
				clash = true
				break
			}
		}
		if clash {
			continue
		}

		slots = append(slots, TimeSlot{Start: start.Format(TimeLayout)})
	}

	return slots
}
