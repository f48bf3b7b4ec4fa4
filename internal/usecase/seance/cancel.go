package seance

import (
	"context"

	"github.com/benjsant/coach-scheduler/internal/audit"
	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/models"
	"github.com/benjsant/coach-scheduler/internal/timezone"
)

type CancelSeance struct {
	repo  domain.Repository
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewCancelSeance(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CancelSeance {
	return &CancelSeance{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *CancelSeance) Execute(
	ctx context.Context,
	actorID uint,
	seanceID uint,
	note string,
) (*models.Seance, error) {

	s, err := uc.repo.GetSeanceByID(ctx, seanceID)
	if err != nil {
		return nil, httperr.ErrBusiness("seance_not_found")
	}

	if err := domain.Cancel(s, actorID, note, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSeance(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "seance_cancelled",
		Entity:   "seance",
		EntityID: &s.ID,
	})

	return s, nil
}
