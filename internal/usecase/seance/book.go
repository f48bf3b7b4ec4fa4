package seance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/benjsant/coach-scheduler/internal/audit"
	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/lock"
	"github.com/benjsant/coach-scheduler/internal/models"
	"github.com/benjsant/coach-scheduler/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookSeanceInput struct {
	ClientID uint

	// The coach is always an explicit choice, never an implicit default.
	CoachID uint

	Date    string
	Time    string
	Subject string
}

type BookSeanceResult struct {
	Seance *models.Seance `json:"seance"`

	// One-shot signal for the caller's confirmation modal. Returned with
	// the response, never stored server-side.
	ShowConfirmation bool `json:"show_confirmation"`
}

// ======================================================
// USE CASE
// ======================================================

type BookSeance struct {
	repo     domain.Repository
	conflict *domain.ConflictChecker
	locker   lock.Locker
	clock    timezone.Clock
	audit    *audit.Dispatcher
}

func NewBookSeance(
	repo domain.Repository,
	locker lock.Locker,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *BookSeance {
	return &BookSeance{
		repo:     repo,
		conflict: domain.NewConflictChecker(repo),
		locker:   locker,
		clock:    clock,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSeance) Execute(
	ctx context.Context,
	in BookSeanceInput,
) (*BookSeanceResult, error) {

	now := uc.clock.Now()

	date, err := time.ParseInLocation(domain.DateLayout, in.Date, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !domain.IsValidSubject(in.Subject) {
		return nil, httperr.ErrBusiness("invalid_subject")
	}

	coach, err := uc.repo.GetUserByID(ctx, in.CoachID)
	if err != nil || coach.Role != models.RoleCoach {
		return nil, httperr.ErrBusiness("coach_not_found")
	}

	if err := uc.conflict.CanBook(ctx, in.CoachID, date, in.Time, now); err != nil {
		return nil, err
	}

	// The lock only narrows the window between the advisory check and the
	// insert; the unique index settles whichever request loses the race.
	key := lock.SlotKey(in.CoachID, in.Date, in.Time)
	ok, err := uc.locker.Lock(ctx, key, 10*time.Second)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("slot_taken")
	}
	defer uc.locker.Unlock(ctx, key)

	s := &models.Seance{
		Reference: uuid.NewString(),
		ClientID:  in.ClientID,
		CoachID:   in.CoachID,
		Date:      date,
		StartTime: in.Time,
		Subject:   in.Subject,
		Status:    int(domain.InitialStatus()),
	}

	if err := uc.repo.CreateSeance(ctx, s); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "seance_booked",
		Entity:   "seance",
		EntityID: &s.ID,
	})

	return &BookSeanceResult{
		Seance:           s,
		ShowConfirmation: true,
	}, nil
}
