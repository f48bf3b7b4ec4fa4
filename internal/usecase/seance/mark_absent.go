package seance

import (
	"context"

	"github.com/benjsant/coach-scheduler/internal/audit"
	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/models"
	"github.com/benjsant/coach-scheduler/internal/timezone"
)

type MarkAbsent struct {
	repo  domain.Repository
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewMarkAbsent(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *MarkAbsent {
	return &MarkAbsent{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *MarkAbsent) Execute(
	ctx context.Context,
	coachID uint,
	seanceID uint,
) (*models.Seance, error) {

	s, err := uc.repo.GetSeanceByID(ctx, seanceID)
	if err != nil {
		return nil, httperr.ErrBusiness("seance_not_found")
	}

	if err := domain.MarkAbsent(s, coachID, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSeance(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &coachID,
		Action:   "seance_marked_absent",
		Entity:   "seance",
		EntityID: &s.ID,
	})

	return s, nil
}
