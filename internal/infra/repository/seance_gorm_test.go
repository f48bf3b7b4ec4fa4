package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/benjsant/coach-scheduler/internal/httperr"
	"github.com/benjsant/coach-scheduler/internal/models"
)

func newMockRepo(t *testing.T) (*SeanceGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewSeanceGormRepository(gdb), mock
}

func seanceRows(ids ...uint) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "client_id", "coach_id", "date", "start_time", "subject", "status", "note",
	})
	for _, id := range ids {
		rows.AddRow(id, 10, 20, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "09:00", "Personal coaching", 0, "")
	}
	return rows
}

func userRows(id uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "role"}).
		AddRow(id, "Karim", "karim@example.com", "coach")
}

func TestClientUpcoming_Query(t *testing.T) {
	repo, mock := newMockRepo(t)
	loc, _ := time.LoadLocation("Europe/Paris")
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, loc)

	mock.ExpectQuery(`SELECT \* FROM "seances" WHERE client_id = \$1 AND status = \$2 AND \(date > \$3 OR \(date = \$4 AND start_time > \$5\)\) ORDER BY date ASC, start_time ASC`).
		WithArgs(uint(10), 0, "2025-03-10", "2025-03-10", "09:30").
		WillReturnRows(seanceRows(1))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WithArgs(uint(20)).
		WillReturnRows(userRows(20))

	seances, err := repo.ClientUpcoming(context.Background(), 10, now)
	require.NoError(t, err)
	require.Len(t, seances, 1)
	assert.Equal(t, "09:00", seances[0].StartTime)
	assert.Equal(t, "Karim", seances[0].Coach.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientHistory_Query(t *testing.T) {
	repo, mock := newMockRepo(t)
	loc, _ := time.LoadLocation("Europe/Paris")
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, loc)

	mock.ExpectQuery(`SELECT \* FROM "seances" WHERE client_id = \$1 AND \(date < \$2 OR \(date = \$3 AND start_time <= \$4\)\) ORDER BY date DESC, start_time DESC`).
		WithArgs(uint(10), "2025-03-10", "2025-03-10", "09:30").
		WillReturnRows(seanceRows())

	seances, err := repo.ClientHistory(context.Background(), 10, now)
	require.NoError(t, err)
	assert.Empty(t, seances)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCoachViews_Queries(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Paris")
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, loc)

	t.Run("today", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "seances" WHERE coach_id = \$1 AND date = \$2 ORDER BY start_time ASC`).
			WithArgs(uint(20), "2025-03-10").
			WillReturnRows(seanceRows())

		_, err := repo.CoachToday(context.Background(), 20, now)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("upcoming starts tomorrow", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "seances" WHERE coach_id = \$1 AND status = \$2 AND date >= \$3 ORDER BY date ASC, start_time ASC`).
			WithArgs(uint(20), 0, "2025-03-11").
			WillReturnRows(seanceRows())

		_, err := repo.CoachUpcoming(context.Background(), 20, now)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("history excludes pending", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "seances" WHERE coach_id = \$1 AND date <= \$2 AND status <> \$3 ORDER BY date DESC, start_time DESC`).
			WithArgs(uint(20), "2025-03-10", 0).
			WillReturnRows(seanceRows())

		_, err := repo.CoachHistory(context.Background(), 20, now)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("forgotten is past pending", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "seances" WHERE coach_id = \$1 AND date < \$2 AND status = \$3 ORDER BY date DESC, start_time DESC`).
			WithArgs(uint(20), "2025-03-10", 0).
			WillReturnRows(seanceRows())

		_, err := repo.CoachForgotten(context.Background(), 20, now)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindByCoachAndDate(t *testing.T) {
	repo, mock := newMockRepo(t)
	loc, _ := time.LoadLocation("Europe/Paris")
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	mock.ExpectQuery(`SELECT \* FROM "seances" WHERE coach_id = \$1 AND date = \$2 ORDER BY start_time ASC`).
		WithArgs(uint(20), "2025-03-10").
		WillReturnRows(seanceRows(1, 2))

	seances, err := repo.FindByCoachAndDate(context.Background(), 20, date)
	require.NoError(t, err)
	assert.Len(t, seances, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSeance_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "seances"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_coach_slot"})
	mock.ExpectRollback()

	err := repo.CreateSeance(context.Background(), &models.Seance{
		ClientID:  10,
		CoachID:   20,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		Subject:   "Personal coaching",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsUniqueViolation(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}
