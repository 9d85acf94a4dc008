package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user row and its role assignment. The role lives in a
// separate user_roles table, modeled as a set with one member in practice.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, email, password_hash, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.OAuthProvider, u.OAuthProviderID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	roleQuery := `
		INSERT INTO user_roles (id, user_id, role)
		VALUES ($1, $2, $3)
	`
	if _, err := q.Exec(ctx, roleQuery, uuid.NewString(), u.ID, string(u.Role)); err != nil {
		return user.User{}, fmt.Errorf("failed to assign role: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "u.id = $1", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "u.email = $1", email)
}

func (r *userRepository) GetByOAuth(ctx context.Context, provider, providerID string) (user.User, error) {
	return r.getBy(ctx, "u.oauth_provider = $1 AND u.oauth_provider_id = $2", provider, providerID)
}

func (r *userRepository) getBy(ctx context.Context, where string, args ...interface{}) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT u.id, u.email, u.password_hash, u.oauth_provider, u.oauth_provider_id,
			   COALESCE(ur.role, 'employee'),
			   u.created_at, u.updated_at
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		WHERE %s
		LIMIT 1
	`, where)

	var (
		u       user.User
		roleStr string
	)
	err := q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.OAuthProvider, &u.OAuthProviderID,
		&roleStr,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	u.Role = user.ParseRole(roleStr)
	return u, nil
}

// GetRole resolves the role assignment; a missing or unreadable assignment
// resolves to employee.
func (r *userRepository) GetRole(ctx context.Context, userID string) (user.Role, error) {
	q := GetQuerier(ctx, r.db)

	var roleStr string
	err := q.QueryRow(ctx, `SELECT role FROM user_roles WHERE user_id = $1 LIMIT 1`, userID).Scan(&roleStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.RoleEmployee, nil
		}
		return user.RoleEmployee, fmt.Errorf("failed to get role: %w", err)
	}

	return user.ParseRole(roleStr), nil
}
