package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.date, a.check_in, a.check_out, a.status, a.notes,
	a.created_at, a.updated_at
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Status, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// UpsertCheckIn is idempotent per (user_id, date): the insert backs off on
// conflict and the stored row is read back, so the first check_in wins.
func (r *attendanceRepository) UpsertCheckIn(ctx context.Context, userID string, date time.Time, checkIn time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO attendance (id, user_id, date, check_in, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO NOTHING
	`
	_, err := q.Exec(ctx, insert, uuid.NewString(), userID, date, checkIn, attendance.StatusPresent)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert check-in: %w", err)
	}

	return r.GetByUserAndDate(ctx, userID, date)
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, recordID string, checkOut time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE attendance a
		SET check_out = $2, updated_at = NOW()
		WHERE a.id = $1
		RETURNING %s
	`, attendanceColumns)

	rec, err := scanRecord(q.QueryRow(ctx, query, recordID, checkOut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to set check-out: %w", err)
	}
	return rec, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendance a WHERE a.id = $1`, attendanceColumns)
	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return rec, nil
}

func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendance a
		WHERE a.user_id = $1 AND a.date = $2
		LIMIT 1
	`, attendanceColumns)

	rec, err := scanRecord(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return rec, nil
}

func (r *attendanceRepository) ListForUser(ctx context.Context, userID string, window daterange.Range) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendance a
		WHERE a.user_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date DESC
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, userID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) ListAll(ctx context.Context, window daterange.Range) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, p.first_name || ' ' || p.last_name
		FROM attendance a
		INNER JOIN profiles p ON p.user_id = a.user_id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date DESC, p.first_name
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.CheckIn, &rec.CheckOut, &rec.Status, &rec.Notes,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) CountOnDate(ctx context.Context, date time.Time, status attendance.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`,
		date, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) CountForUserBetween(ctx context.Context, userID string, window daterange.Range, status attendance.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE user_id = $1 AND date >= $2 AND date <= $3 AND status = $4`,
		userID, window.Start, window.End, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) CountBetween(ctx context.Context, window daterange.Range, status attendance.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date >= $1 AND date <= $2 AND status = $3`,
		window.Start, window.End, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}
