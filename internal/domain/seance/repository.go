package seance

import (
	"context"
	"time"

	"github.com/benjsant/coach-scheduler/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	ListCoaches(
		ctx context.Context,
	) ([]models.User, error)

	ListClientsForCoach(
		ctx context.Context,
		coachID uint,
	) ([]models.User, error)

	// -------- Seance (create / conflict) --------
	FindByCoachAndDate(
		ctx context.Context,
		coachID uint,
		date time.Time,
	) ([]models.Seance, error)

	CreateSeance(
		ctx context.Context,
		s *models.Seance,
	) error

	// -------- Seance (state change) --------
	GetSeanceByID(
		ctx context.Context,
		id uint,
	) (*models.Seance, error)

	UpdateSeance(
		ctx context.Context,
		s *models.Seance,
	) error

	// -------- Schedule views --------
	ClientUpcoming(
		ctx context.Context,
		clientID uint,
		now time.Time,
	) ([]models.Seance, error)

	ClientHistory(
		ctx context.Context,
		clientID uint,
		now time.Time,
	) ([]models.Seance, error)

	CoachToday(
		ctx context.Context,
		coachID uint,
		now time.Time,
	) ([]models.Seance, error)

	CoachUpcoming(
		ctx context.Context,
		coachID uint,
		now time.Time,
	) ([]models.Seance, error)

	CoachHistory(
		ctx context.Context,
		coachID uint,
		now time.Time,
	) ([]models.Seance, error)

	CoachForgotten(
		ctx context.Context,
		coachID uint,
		now time.Time,
	) ([]models.Seance, error)
}
