package seance

import "github.com/benjsant/coach-scheduler/internal/httperr"

// ===============================
// Seance Status
// ===============================

// Status is the outcome code of a seance. The integer values are part of
// the stored data and the API contract; do not reorder.
type Status int

const (
	StatusPending Status = iota
	StatusPresent
	StatusAbsent
	StatusCancelledByClient
	StatusCancelledByCoach
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPresent:
		return "present"
	case StatusAbsent:
		return "absent"
	case StatusCancelledByClient:
		return "cancelled_by_client"
	case StatusCancelledByCoach:
		return "cancelled_by_coach"
	}
	return "unknown"
}

// Terminal reports whether no further status transition is permitted.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// ===============================
// Validations
// ===============================

// FromPending guards every transition: only a pending seance may move.
// A second submit of the same action lands here and is rejected cleanly.
func FromPending(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
