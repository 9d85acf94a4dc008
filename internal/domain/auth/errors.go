package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
	ErrOAuthEmailNotFound  = errors.New("no account registered for this google email")
)
