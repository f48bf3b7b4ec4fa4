package seance

import (
	"context"
	"time"

	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetAvailability(
	repo domain.Repository,
	clock timezone.Clock,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		clock: clock,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	coachID uint,
	dateStr string,
) ([]domain.TimeSlot, error) {

	now := uc.clock.Now()

	date, err := time.ParseInLocation(domain.DateLayout, dateStr, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	existing, err := uc.repo.FindByCoachAndDate(ctx, coachID, date)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(existing, date, now), nil
}
