package user

import "context"

// UserRepository - interface for users and user_roles tables
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByOAuth(ctx context.Context, provider, providerID string) (User, error)
	// GetRole resolves the role assignment for a user. Missing assignments
	// resolve to RoleEmployee, never to elevated access.
	GetRole(ctx context.Context, userID string) (Role, error)
}
