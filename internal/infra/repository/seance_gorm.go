package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/models"
)

type SeanceGormRepository struct {
	db *gorm.DB
}

func NewSeanceGormRepository(db *gorm.DB) *SeanceGormRepository {
	return &SeanceGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *SeanceGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *SeanceGormRepository) ListCoaches(
	ctx context.Context,
) ([]models.User, error) {

	var coaches []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleCoach).
		Order("name ASC").
		Find(&coaches).Error; err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *SeanceGormRepository) ListClientsForCoach(
	ctx context.Context,
	coachID uint,
) ([]models.User, error) {

	var clients []models.User
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("DISTINCT users.*").
		Joins("JOIN seances ON seances.client_id = users.id").
		Where("seances.coach_id = ?", coachID).
		Order("users.name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// --------------------------------------------------
// Seance (create / conflict)
// --------------------------------------------------

func (r *SeanceGormRepository) FindByCoachAndDate(
	ctx context.Context,
	coachID uint,
	date time.Time,
) ([]models.Seance, error) {

	var seances []models.Seance
	if err := r.db.WithContext(ctx).
		Where(
			"coach_id = ? AND date = ?",
			coachID, date.Format(domain.DateLayout),
		).
		Order("start_time ASC").
		Find(&seances).Error; err != nil {
		return nil, err
	}
	return seances, nil
}

func (r *SeanceGormRepository) CreateSeance(
	ctx context.Context,
	s *models.Seance,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// --------------------------------------------------
// Seance (state change)
// --------------------------------------------------

func (r *SeanceGormRepository) GetSeanceByID(
	ctx context.Context,
	id uint,
) (*models.Seance, error) {

	var s models.Seance
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SeanceGormRepository) UpdateSeance(
	ctx context.Context,
	s *models.Seance,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// --------------------------------------------------
// Schedule views
//
// Every partition is cut against a full instant, not a calendar date:
// "today but already past" belongs to history, not upcoming.
// --------------------------------------------------

func (r *SeanceGormRepository) ClientUpcoming(
	ctx context.Context,
	clientID uint,
	now time.Time,
) ([]models.Seance, error) {

	today := now.Format(domain.DateLayout)
	clock := now.Format(domain.TimeLayout)

	var seances []models.Seance
	if err := r.db.WithContext(ctx).
		Preload("Coach").
		Where(
			"client_id = ? AND status = ? AND (date > ? OR (date = ? AND start_time > ?))",
			clientID, int(domain.StatusPending), today, today, clock,
		).
		Order("date ASC, start_time ASC").
		Find(&seances).Error; err != nil {
		return nil, err
	}
	return seances, nil
}

func (r *SeanceGormRepository) ClientHistory(
	ctx context.Context,
	clientID uint,
	now time.Time,
) ([]models.Seance, error) {

	today := now.Format(domain.DateLayout)
	clock := now.Format(domain.TimeLayout)

	var seances []models.Seance
	if err := r.db.WithContext(ctx).
		Preload("Coach").
		Where(
			"client_id = ? AND (date < ? OR (date = ? AND start_time <= ?))",
			clientID, today, today, clock,
		).
		Order("date DESC, start_time DESC").
		Find(&seances).Error; err != nil {
		return nil, err
	}
	return seances, nil
}

func (r *SeanceGormRepository) CoachToday(
	ctx context.Context,
	coachID uint,
	now time.Time,
) ([]models.Seance, error) {

	var seances []models.Seance
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"coach_id = ? AND date = ?",
			coachID, now.Format(domain.DateLayout),
		).
		Order("start_time ASC").
		Find(&seances).Error; err != nil {
		return nil, err
	}
	return seances, nil
}

func (r *SeanceGormRepository) CoachUpcoming(
	ctx context.Context,
	coachID uint,
	now time.Time,
) ([]models.Seance, error) {

	tomorrow := now.AddDate(0, 0, 1).Format(domain.DateLayout)

	var seances []models.Seance
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"coach_id = ? AND status = ? AND date >= ?",
			coachID, int(domain.StatusPending), tomorrow,
		).
		Order("date ASC, start_time ASC").
		Find(&seances).Error; err != nil {
		return nil, err
	}
	return seances, nil
}

func (r *SeanceGormRepository) CoachHistory(
	ctx context.Context,
	coachID uint,
	now time.Time,
) ([]models.Seance, error) {

	var seances []models.Seance
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"coach_id = ? AND date <= ? AND status <> ?",
			coachID, now.Format(domain.DateLayout), int(domain.StatusPending),
		).
		Order("date DESC, start_time DESC").
		Find(&seances).Error; err != nil {
		return nil, err
	}
	return seances, nil
}

func (r *SeanceGormRepository) CoachForgotten(
	ctx context.Context,
	coachID uint,
	now time.Time,
) ([]models.Seance, error) {

	var seances []models.Seance
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"coach_id = ? AND date < ? AND status = ?",
			coachID, now.Format(domain.DateLayout), int(domain.StatusPending),
		).
		Order("date DESC, start_time DESC").
		Find(&seances).Error; err != nil {
		return nil, err
	}
	return seances, nil
}

// Compile-time check
var _ domain.Repository = (*SeanceGormRepository)(nil)
