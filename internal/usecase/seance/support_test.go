package seance

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/benjsant/coach-scheduler/internal/domain/seance"
	"github.com/benjsant/coach-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository with the same filtering, ordering and
// uniqueness semantics as the gorm implementation.
type fakeRepo struct {
	users   map[uint]*models.User
	seances map[uint]*models.Seance
	nextID  uint
}

func newFakeRepo(users ...*models.User) *fakeRepo {
	r := &fakeRepo{
		users:   map[uint]*models.User{},
		seances: map[uint]*models.Seance{},
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *fakeRepo) ListCoaches(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == models.RoleCoach {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) ListClientsForCoach(ctx context.Context, coachID uint) ([]models.User, error) {
	seen := map[uint]bool{}
	var out []models.User
	for _, s := range r.seances {
		if s.CoachID == coachID && !seen[s.ClientID] {
			seen[s.ClientID] = true
			if u, ok := r.users[s.ClientID]; ok {
				out = append(out, *u)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) FindByCoachAndDate(ctx context.Context, coachID uint, date time.Time) ([]models.Seance, error) {
	day := date.Format(domain.DateLayout)
	var out []models.Seance
	for _, s := range r.seances {
		if s.CoachID == coachID && s.Date.Format(domain.DateLayout) == day {
			out = append(out, *s)
		}
	}
	sortAsc(out)
	return out, nil
}

func (r *fakeRepo) CreateSeance(ctx context.Context, s *models.Seance) error {
	for _, existing := range r.seances {
		if existing.CoachID == s.CoachID &&
			existing.Date.Format(domain.DateLayout) == s.Date.Format(domain.DateLayout) &&
			existing.StartTime == s.StartTime {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_coach_slot"}
		}
	}
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.seances[s.ID] = &cp
	return nil
}

func (r *fakeRepo) GetSeanceByID(ctx context.Context, id uint) (*models.Seance, error) {
	s, ok := r.seances[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) UpdateSeance(ctx context.Context, s *models.Seance) error {
	cp := *s
	r.seances[s.ID] = &cp
	return nil
}

func (r *fakeRepo) ClientUpcoming(ctx context.Context, clientID uint, now time.Time) ([]models.Seance, error) {
	today := now.Format(domain.DateLayout)
	clock := now.Format(domain.TimeLayout)
	var out []models.Seance
	for _, s := range r.seances {
		day := s.Date.Format(domain.DateLayout)
		if s.ClientID == clientID && s.Status == int(domain.StatusPending) &&
			(day > today || (day == today && s.StartTime > clock)) {
			out = append(out, *s)
		}
	}
	sortAsc(out)
	return out, nil
}

func (r *fakeRepo) ClientHistory(ctx context.Context, clientID uint, now time.Time) ([]models.Seance, error) {
	today := now.Format(domain.DateLayout)
	clock := now.Format(domain.TimeLayout)
	var out []models.Seance
	for _, s := range r.seances {
		day := s.Date.Format(domain.DateLayout)
		if s.ClientID == clientID && (day < today || (day == today && s.StartTime <= clock)) {
			out = append(out, *s)
		}
	}
	sortDesc(out)
	return out, nil
}

func (r *fakeRepo) CoachToday(ctx context.Context, coachID uint, now time.Time) ([]models.Seance, error) {
	today := now.Format(domain.DateLayout)
	var out []models.Seance
	for _, s := range r.seances {
		if s.CoachID == coachID && s.Date.Format(domain.DateLayout) == today {
			out = append(out, *s)
		}
	}
	sortAsc(out)
	return out, nil
}

func (r *fakeRepo) CoachUpcoming(ctx context.Context, coachID uint, now time.Time) ([]models.Seance, error) {
	tomorrow := now.AddDate(0, 0, 1).Format(domain.DateLayout)
	var out []models.Seance
	for _, s := range r.seances {
		if s.CoachID == coachID && s.Status == int(domain.StatusPending) &&
			s.Date.Format(domain.DateLayout) >= tomorrow {
			out = append(out, *s)
		}
	}
	sortAsc(out)
	return out, nil
}

func (r *fakeRepo) CoachHistory(ctx context.Context, coachID uint, now time.Time) ([]models.Seance, error) {
	today := now.Format(domain.DateLayout)
	var out []models.Seance
	for _, s := range r.seances {
		if s.CoachID == coachID && s.Status != int(domain.StatusPending) &&
			s.Date.Format(domain.DateLayout) <= today {
			out = append(out, *s)
		}
	}
	sortDesc(out)
	return out, nil
}

func (r *fakeRepo) CoachForgotten(ctx context.Context, coachID uint, now time.Time) ([]models.Seance, error) {
	today := now.Format(domain.DateLayout)
	var out []models.Seance
	for _, s := range r.seances {
		if s.CoachID == coachID && s.Status == int(domain.StatusPending) &&
			s.Date.Format(domain.DateLayout) < today {
			out = append(out, *s)
		}
	}
	sortDesc(out)
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func sortAsc(seances []models.Seance) {
	sort.Slice(seances, func(i, j int) bool {
		di, dj := seances[i].Date.Format(domain.DateLayout), seances[j].Date.Format(domain.DateLayout)
		if di != dj {
			return di < dj
		}
		return seances[i].StartTime < seances[j].StartTime
	})
}

func sortDesc(seances []models.Seance) {
	sort.Slice(seances, func(i, j int) bool {
		di, dj := seances[i].Date.Format(domain.DateLayout), seances[j].Date.Format(domain.DateLayout)
		if di != dj {
			return di > dj
		}
		return seances[i].StartTime > seances[j].StartTime
	})
}

type notFoundError struct{}

func (notFoundError) Error() string { return "record not found" }

var errNotFound = notFoundError{}

// fakeLocker grants every lock.
type fakeLocker struct {
	denied bool
}

func (l *fakeLocker) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return !l.denied, nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key string) error {
	return nil
}
