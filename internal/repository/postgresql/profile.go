package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) employee.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, user_id, employee_id, email, first_name, last_name,
	phone, address, department, designation, date_of_joining, avatar_url,
	created_at, updated_at
`

func scanProfile(row pgx.Row) (employee.Profile, error) {
	var p employee.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.EmployeeID, &p.Email, &p.FirstName, &p.LastName,
		&p.Phone, &p.Address, &p.Department, &p.Designation, &p.DateOfJoining, &p.AvatarURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *profileRepository) Create(ctx context.Context, profile employee.Profile) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	query := `
		INSERT INTO profiles (
			id, user_id, employee_id, email, first_name, last_name,
			phone, address, department, designation, date_of_joining, avatar_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		profile.ID, profile.UserID, profile.EmployeeID, profile.Email,
		profile.FirstName, profile.LastName,
		profile.Phone, profile.Address, profile.Department, profile.Designation,
		profile.DateOfJoining, profile.AvatarURL,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Profile{}, employee.ErrEmployeeIDExists
		}
		return employee.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)
	p, err := scanProfile(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = $1`, profileColumns)
	p, err := scanProfile(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// List applies the directory search (name, email, employee ID, department)
// and optional department filter, ordered by first name.
func (r *profileRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM profiles`, profileColumns)
	args := []interface{}{}
	where := ""

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = `(first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
			OR employee_id ILIKE $1 OR department ILIKE $1)`
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		cond := fmt.Sprintf("department = $%d", len(args))
		if where != "" {
			where += " AND " + cond
		} else {
			where = cond
		}
	}
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY first_name, last_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []employee.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Departments(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT department FROM profiles
		WHERE department IS NOT NULL AND department <> ''
		ORDER BY department
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

func (r *profileRepository) UpdateContactInfo(ctx context.Context, profileID string, phone, address *string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE profiles
		SET phone = $2, address = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, profileColumns)

	p, err := scanProfile(q.QueryRow(ctx, query, profileID, phone, address))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to update contact info: %w", err)
	}
	return p, nil
}

func (r *profileRepository) UpdateJobInfo(ctx context.Context, profileID string, department, designation *string, dateOfJoining *time.Time) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE profiles
		SET department = $2, designation = $3, date_of_joining = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, profileColumns)

	p, err := scanProfile(q.QueryRow(ctx, query, profileID, department, designation, dateOfJoining))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Profile{}, employee.ErrProfileNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to update job info: %w", err)
	}
	return p, nil
}
