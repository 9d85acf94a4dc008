package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo keeps rows in memory keyed by (user, date), mirroring
// the unique constraint on the real table.
type fakeAttendanceRepo struct {
	records map[string]attendance.Record
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func key(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) UpsertCheckIn(_ context.Context, userID string, date time.Time, checkIn time.Time) (attendance.Record, error) {
	k := key(userID, date)
	if existing, ok := f.records[k]; ok {
		return existing, nil
	}
	f.nextID++
	rec := attendance.Record{
		ID:      fmt.Sprintf("rec-%d", f.nextID),
		UserID:  userID,
		Date:    date,
		CheckIn: &checkIn,
		Status:  attendance.StatusPresent,
	}
	f.records[k] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, recordID string, checkOut time.Time) (attendance.Record, error) {
	for k, rec := range f.records {
		if rec.ID == recordID {
			rec.CheckOut = &checkOut
			f.records[k] = rec
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (attendance.Record, error) {
	if rec, ok := f.records[key(userID, date)]; ok {
		return rec, nil
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) ListForUser(_ context.Context, userID string, window daterange.Range) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID && !rec.Date.Before(window.Start) && !rec.Date.After(window.End) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListAll(_ context.Context, window daterange.Range) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if !rec.Date.Before(window.Start) && !rec.Date.After(window.End) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountOnDate(_ context.Context, date time.Time, status attendance.Status) (int64, error) {
	var count int64
	for _, rec := range f.records {
		if rec.Date.Equal(date) && rec.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) CountForUserBetween(_ context.Context, userID string, window daterange.Range, status attendance.Status) (int64, error) {
	var count int64
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Status == status && !rec.Date.Before(window.Start) && !rec.Date.After(window.End) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) CountBetween(_ context.Context, window daterange.Range, status attendance.Status) (int64, error) {
	var count int64
	for _, rec := range f.records {
		if rec.Status == status && !rec.Date.Before(window.Start) && !rec.Date.After(window.End) {
			count++
		}
	}
	return count, nil
}

func newTestService(repo attendance.AttendanceRepository, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		now:                  func() time.Time { return now },
	}
}

var testSession = user.Session{UserID: "user-1", Email: "e@dayflow.io", Role: user.RoleEmployee}

func TestCheckIn_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	clock := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, clock)

	first, err := svc.CheckIn(ctx, testSession)
	require.NoError(t, err)
	require.NotNil(t, first.CheckIn)

	// A later check-in on the same day must not move the recorded time.
	svc.now = func() time.Time { return clock.Add(2 * time.Hour) }
	second, err := svc.CheckIn(ctx, testSession)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, *first.CheckIn, *second.CheckIn)
}

func TestCheckOut_RequiresCheckIn(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), time.Date(2026, time.March, 2, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(ctx, testSession)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_OnceOnly(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	clock := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, clock)

	_, err := svc.CheckIn(ctx, testSession)
	require.NoError(t, err)

	svc.now = func() time.Time { return clock.Add(8 * time.Hour) }
	out, err := svc.CheckOut(ctx, testSession)
	require.NoError(t, err)
	require.NotNil(t, out.CheckOut)

	_, err = svc.CheckOut(ctx, testSession)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOut_RejectsBackwardsClock(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	clock := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, clock)

	_, err := svc.CheckIn(ctx, testSession)
	require.NoError(t, err)

	svc.now = func() time.Time { return clock.Add(-time.Hour) }
	_, err = svc.CheckOut(ctx, testSession)
	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
}

func TestToday_NilWhenAbsent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC))

	rec, err := svc.Today(ctx, testSession)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestAllMonth_RequiresHrOrAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeAttendanceRepo(), time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC))

	_, err := svc.AllMonth(ctx, testSession)
	assert.ErrorIs(t, err, user.ErrHrOrAdminRequired)

	hr := user.Session{UserID: "hr-1", Role: user.RoleHR}
	_, err = svc.AllMonth(ctx, hr)
	assert.NoError(t, err)
}
