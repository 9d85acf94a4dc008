package auth

import "context"

// AuthService resolves identities: registration, credential login, Google
// OAuth login and token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
