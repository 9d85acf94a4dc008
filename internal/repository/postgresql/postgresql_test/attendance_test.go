package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_UpsertCheckIn_FirstCheckInWins(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	testUser := createTestUser(t, ctx, db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)
	firstCheckIn := date.Add(9 * time.Hour)

	first, err := attendanceRepo.UpsertCheckIn(ctx, testUser.ID, date, firstCheckIn)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.True(t, first.CheckIn.Equal(firstCheckIn))

	// A second check-in on the same day hits the (user_id, date) conflict and
	// must return the stored row untouched.
	second, err := attendanceRepo.UpsertCheckIn(ctx, testUser.ID, date, firstCheckIn.Add(2*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.CheckIn.Equal(firstCheckIn))
}

func TestAttendanceRepository_UpsertCheckIn_SeparateDays(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	testUser := createTestUser(t, ctx, db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	monday := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	first, err := attendanceRepo.UpsertCheckIn(ctx, testUser.ID, monday, monday.Add(9*time.Hour))
	require.NoError(t, err)

	second, err := attendanceRepo.UpsertCheckIn(ctx, testUser.ID, tuesday, tuesday.Add(9*time.Hour))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
