package seance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/models"
)

// stubRepo implements only what the conflict checker touches.
type stubRepo struct {
	Repository
	seances []models.Seance
}

func (r *stubRepo) FindByCoachAndDate(ctx context.Context, coachID uint, date time.Time) ([]models.Seance, error) {
	return r.seances, nil
}

func parisTime(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func TestCanBook_PastSlot(t *testing.T) {
	loc := parisTime(t)
	cc := NewConflictChecker(&stubRepo{})

	// Monday 2025-03-10, now at 10:00
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, loc)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	err := cc.CanBook(context.Background(), 1, day, "09:59", now)
	assert.True(t, httperr.IsBusiness(err, "past_slot"))

	// exactly now is still bookable (>= now)
	err = cc.CanBook(context.Background(), 1, day, "10:00", now)
	assert.NoError(t, err)
}

func TestCanBook_Weekend(t *testing.T) {
	loc := parisTime(t)
	cc := NewConflictChecker(&stubRepo{})
	now := time.Date(2025, 3, 7, 8, 0, 0, 0, loc) // Friday

	saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, loc)
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)

	err := cc.CanBook(context.Background(), 1, saturday, "14:00", now)
	assert.True(t, httperr.IsBusiness(err, "weekend_unavailable"))

	err = cc.CanBook(context.Background(), 1, sunday, "09:00", now)
	assert.True(t, httperr.IsBusiness(err, "weekend_unavailable"))
}

func TestCanBook_BufferWindow(t *testing.T) {
	loc := parisTime(t)
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, loc)
	day := time.Date(2025, 3, 11, 0, 0, 0, 0, loc) // Tuesday

	repo := &stubRepo{seances: []models.Seance{
		{CoachID: 1, Date: day, StartTime: "10:00"},
	}}
	cc := NewConflictChecker(repo)

	tests := []struct {
		time     string
		wantCode string
	}{
		{"10:00", "slot_too_close"},
		{"10:09", "slot_too_close"},
		{"09:51", "slot_too_close"},
		// the buffer is inclusive: exactly 10 minutes apart is rejected
		{"10:10", "slot_too_close"},
		{"09:50", "slot_too_close"},
		{"10:11", ""},
		{"09:49", ""},
	}

	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			err := cc.CanBook(context.Background(), 1, day, tt.time, now)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
			}
		})
	}
}

func TestCanBook_ServiceHours(t *testing.T) {
	loc := parisTime(t)
	cc := NewConflictChecker(&stubRepo{})
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, loc)
	day := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	err := cc.CanBook(context.Background(), 1, day, "07:59", now)
	assert.True(t, httperr.IsBusiness(err, "outside_service_hours"))

	// the window is half-open: 20:00 itself is out
	err = cc.CanBook(context.Background(), 1, day, "20:00", now)
	assert.True(t, httperr.IsBusiness(err, "outside_service_hours"))

	err = cc.CanBook(context.Background(), 1, day, "08:00", now)
	assert.NoError(t, err)

	err = cc.CanBook(context.Background(), 1, day, "19:50", now)
	assert.NoError(t, err)
}

func TestCanBook_ChecksRunInOrder(t *testing.T) {
	loc := parisTime(t)
	cc := NewConflictChecker(&stubRepo{})

	// Saturday in the past: past_slot wins over weekend_unavailable.
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, loc)
	saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, loc)

	err := cc.CanBook(context.Background(), 1, saturday, "09:00", now)
	assert.True(t, httperr.IsBusiness(err, "past_slot"))
}

func TestCanBook_InvalidTime(t *testing.T) {
	loc := parisTime(t)
	cc := NewConflictChecker(&stubRepo{})
	now := time.Date(2025, 3, 10, 6, 0, 0, 0, loc)
	day := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	err := cc.CanBook(context.Background(), 1, day, "25:99", now)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}
