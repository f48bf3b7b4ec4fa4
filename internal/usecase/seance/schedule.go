package seance

import (
	"context"

	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/dto"
	"github.com/benjsant/coach-scheduler/internal/models"
	"github.com/benjsant/coach-scheduler/internal/timezone"
)

// ScheduleViews derives the upcoming/historical partitions for both
// perspectives. Every view is cut against the clock's full instant so that
// a seance earlier today already counts as past.
type ScheduleViews struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewScheduleViews(
	repo domain.Repository,
	clock timezone.Clock,
) *ScheduleViews {
	return &ScheduleViews{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ScheduleViews) ClientUpcoming(
	ctx context.Context,
	clientID uint,
) ([]dto.SeanceListDTO, error) {
	seances, err := uc.repo.ClientUpcoming(ctx, clientID, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return toDTOs(seances), nil
}

// ClientHistory includes lapsed seances: a pending slot whose time has
// passed stays pending and shows up here until the coach resolves it.
func (uc *ScheduleViews) ClientHistory(
	ctx context.Context,
	clientID uint,
) ([]dto.SeanceListDTO, error) {
	seances, err := uc.repo.ClientHistory(ctx, clientID, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return toDTOs(seances), nil
}

func (uc *ScheduleViews) CoachToday(
	ctx context.Context,
	coachID uint,
) ([]dto.SeanceListDTO, error) {
	seances, err := uc.repo.CoachToday(ctx, coachID, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return toDTOs(seances), nil
}

func (uc *ScheduleViews) CoachUpcoming(
	ctx context.Context,
	coachID uint,
) ([]dto.SeanceListDTO, error) {
	seances, err := uc.repo.CoachUpcoming(ctx, coachID, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return toDTOs(seances), nil
}

func (uc *ScheduleViews) CoachHistory(
	ctx context.Context,
	coachID uint,
) ([]dto.SeanceListDTO, error) {
	seances, err := uc.repo.CoachHistory(ctx, coachID, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return toDTOs(seances), nil
}

// CoachForgotten is the actionable backlog: past seances never resolved.
// Distinct from history, which only carries resolved outcomes.
func (uc *ScheduleViews) CoachForgotten(
	ctx context.Context,
	coachID uint,
) ([]dto.SeanceListDTO, error) {
	seances, err := uc.repo.CoachForgotten(ctx, coachID, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return toDTOs(seances), nil
}

func toDTOs(seances []models.Seance) []dto.SeanceListDTO {
	out := make([]dto.SeanceListDTO, 0, len(seances))
	for _, s := range seances {
		out = append(out, dto.SeanceListDTO{
			ID:          s.ID,
			Reference:   s.Reference,
			Date:        s.Date.Format(domain.DateLayout),
			StartTime:   s.StartTime,
			Subject:     s.Subject,
			Status:      s.Status,
			StatusLabel: domain.Status(s.Status).String(),
			Note:        s.Note,
			ClientName:  s.Client.Name,
			CoachName:   s.Coach.Name,
		})
	}
	return out
}
