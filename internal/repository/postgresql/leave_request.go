package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `
	lr.id, lr.user_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
	lr.status, lr.reviewed_by, lr.created_at, lr.updated_at
`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var lr leave.Request
	err := row.Scan(
		&lr.ID, &lr.UserID, &lr.Type, &lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.Status, &lr.ReviewedBy, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (id, user_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		request.ID, request.UserID, request.Type, request.StartDate, request.EndDate,
		request.Reason, leave.StatusPending,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	request.Status = leave.StatusPending
	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM leave_requests lr WHERE lr.id = $1`, leaveColumns)
	lr, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

func (r *leaveRequestRepository) ListForUser(ctx context.Context, userID string, limit int) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM leave_requests lr
		WHERE lr.user_id = $1
		ORDER BY lr.created_at DESC
	`, leaveColumns)
	args := []interface{}{userID}
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $2"
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, p.first_name || ' ' || p.last_name
		FROM leave_requests lr
		INNER JOIN profiles p ON p.user_id = lr.user_id
		ORDER BY lr.created_at DESC
	`, leaveColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var lr leave.Request
		err := rows.Scan(
			&lr.ID, &lr.UserID, &lr.Type, &lr.StartDate, &lr.EndDate, &lr.Reason,
			&lr.Status, &lr.ReviewedBy, &lr.CreatedAt, &lr.UpdatedAt,
			&lr.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// UpdateStatus guards the pending -> approved/rejected transition in the
// WHERE clause; a row that was already reviewed is left untouched.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, reviewerID string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE leave_requests lr
		SET status = $2, reviewed_by = $3, updated_at = NOW()
		WHERE lr.id = $1 AND lr.status = 'pending'
		RETURNING %s
	`, leaveColumns)

	lr, err := scanLeave(q.QueryRow(ctx, query, id, status, reviewerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the row is missing or it is no longer pending.
			if _, getErr := r.GetByID(ctx, id); getErr == nil {
				return leave.Request{}, leave.ErrAlreadyReviewed
			}
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to update leave status: %w", err)
	}
	return lr, nil
}

func (r *leaveRequestRepository) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave requests: %w", err)
	}
	return count, nil
}

func (r *leaveRequestRepository) CountApprovedStartingBetween(ctx context.Context, window daterange.Range) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE status = 'approved' AND start_date >= $1 AND start_date <= $2`,
		window.Start, window.End,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count approved leaves: %w", err)
	}
	return count, nil
}

func (r *leaveRequestRepository) ListApprovedForUserOverlapping(ctx context.Context, userID string, window daterange.Range) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM leave_requests lr
		WHERE lr.user_id = $1 AND lr.status = 'approved'
		  AND lr.start_date <= $3 AND lr.end_date >= $2
		ORDER BY lr.start_date
	`, leaveColumns)

	rows, err := q.Query(ctx, query, userID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}
