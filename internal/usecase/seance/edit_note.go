package seance

import (
	"context"

	"github.com/benjsant/coach-scheduler/internal/audit"
	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/models"
)

type EditNote struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEditNote(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *EditNote {
	return &EditNote{
		repo:  repo,
		audit: audit,
	}
}

func (uc *EditNote) Execute(
	ctx context.Context,
	coachID uint,
	seanceID uint,
	note string,
) (*models.Seance, error) {

	s, err := uc.repo.GetSeanceByID(ctx, seanceID)
	if err != nil {
		return nil, httperr.ErrBusiness("seance_not_found")
	}

	if err := domain.EditNote(s, coachID, note); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSeance(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &coachID,
		Action:   "seance_note_edited",
		Entity:   "seance",
		EntityID: &s.ID,
	})

	return s, nil
}
