package seance

import (
	"context"
	"time"

	"github.com/benjsant/coach-scheduler/internal/httperr"
)

// ConflictChecker decides whether a slot is bookable for a coach. Read-only:
// the unique index on (coach, date, start_time) remains the commit-time
// guard against racing bookings.
type ConflictChecker struct {
	repo Repository
}

func NewConflictChecker(repo Repository) *ConflictChecker {
	return &ConflictChecker{repo: repo}
}

// CanBook runs the booking checks in order, stopping at the first failure:
//  1. the slot instant must not be before now        → past_slot
//  2. the date must be a business day                → weekend_unavailable
//  3. no seance of this coach within ±10 min of it   → slot_too_close
//  4. the start time must be inside [08:00, 20:00)   → outside_service_hours
func (cc *ConflictChecker) CanBook(
	ctx context.Context,
	coachID uint,
	date time.Time,
	startTime string,
	now time.Time,
) error {

	startMin, err := ParseStartTime(startTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	if SlotInstant(date, startTime, now.Location()).Before(now) {
		return httperr.ErrBusiness("past_slot")
	}

	if IsWeekend(date) {
		return httperr.ErrBusiness("weekend_unavailable")
	}

	existing, err := cc.repo.FindByCoachAndDate(ctx, coachID, date)
	if err != nil {
		return err
	}
	for _, s := range existing {
		m, err := ParseStartTime(s.StartTime)
		if err != nil {
			continue
		}
		delta := m - startMin
		if delta < 0 {
			delta = -delta
		}
		if delta <= BufferMinutes {
			return httperr.ErrBusiness("slot_too_close")
		}
	}

	if !WithinServiceWindow(startMin) {
		return httperr.ErrBusiness("outside_service_hours")
	}

	return nil
}
