package seance

import (
	"strings"
	"time"

	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// AbsentNote is the fixed note stored when a coach marks a client absent.
const AbsentNote = "marked absent by coach"

// Complete moves a pending seance to Present. Coach only.
func Complete(s *models.Seance, actorID uint, note string, now time.Time) error {
	if actorID != s.CoachID {
		return httperr.ErrBusiness("unauthorized_actor")
	}
	if err := FromPending(Status(s.Status)); err != nil {
		return err
	}

	s.Status = int(StatusPresent)
	s.Note = note
	s.ResolvedAt = &now
	return nil
}

// MarkAbsent moves a pending seance to Absent. Coach only.
func MarkAbsent(s *models.Seance, actorID uint, now time.Time) error {
	if actorID != s.CoachID {
		return httperr.ErrBusiness("unauthorized_actor")
	}
	if err := FromPending(Status(s.Status)); err != nil {
		return err
	}

	s.Status = int(StatusAbsent)
	s.Note = AbsentNote
	s.ResolvedAt = &now
	return nil
}

// Cancel moves a pending seance to the cancelled status matching the actor.
func Cancel(s *models.Seance, actorID uint, note string, now time.Time) error {
	var next Status
	switch actorID {
	case s.ClientID:
		next = StatusCancelledByClient
	case s.CoachID:
		next = StatusCancelledByCoach
	default:
		return httperr.ErrBusiness("unauthorized_actor")
	}

	if err := FromPending(Status(s.Status)); err != nil {
		return err
	}

	s.Status = int(next)
	s.Note = note
	s.ResolvedAt = &now
	return nil
}

// EditNote overwrites the note on a resolved seance. Coach only, no status
// change, blank notes rejected.
func EditNote(s *models.Seance, actorID uint, note string) error {
	if actorID != s.CoachID {
		return httperr.ErrBusiness("unauthorized_actor")
	}
	if !Status(s.Status).Terminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	if strings.TrimSpace(note) == "" {
		return httperr.ErrBusiness("empty_note")
	}

	s.Note = note
	return nil
}
