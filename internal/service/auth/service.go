package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/oauth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/postgresql"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

const oauthProviderGoogle = "google"

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.ProfileRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	profileRepository employee.ProfileRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                db,
		UserRepository:    userRepository,
		ProfileRepository: profileRepository,
		jwtService:        jwtService,
		googleService:     googleService,
	}
}

// Register creates the user, its role assignment and its profile in one
// transaction, then logs the new account in.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.UserRepository.Create(txCtx, user.User{
			Email:        strings.ToLower(req.Email),
			PasswordHash: &hashStr,
			Role:         user.ParseRole(req.Role),
		})
		if err != nil {
			return err
		}

		_, err = s.ProfileRepository.Create(txCtx, employee.Profile{
			UserID:     created.ID,
			EmployeeID: req.EmployeeID,
			Email:      created.Email,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
		})
		return err
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return s.issueTokens(created)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, err
	}

	if u.PasswordHash == nil {
		// OAuth-only account, no password to compare.
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// LoginWithGoogle resolves the OAuth code to a verified Google identity and
// signs in the matching account. Unknown emails are rejected rather than
// provisioned; onboarding stays with HR.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.AuthResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.AuthResponse{}, auth.ErrOAuthEmailNotFound
	}

	u, err := s.UserRepository.GetByOAuth(ctx, oauthProviderGoogle, info.GoogleID)
	if err == nil {
		return s.issueTokens(u)
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.AuthResponse{}, err
	}

	u, err = s.UserRepository.GetByEmail(ctx, strings.ToLower(info.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrOAuthEmailNotFound
		}
		return auth.AuthResponse{}, err
	}

	return s.issueTokens(u)
}

// Refresh rotates the token pair. The presented refresh token is revoked so
// it cannot be replayed.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.AuthResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.AuthResponse{}, auth.ErrRefreshTokenRevoked
	}

	decoded, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}
	if err := jwxjwt.Validate(decoded); err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return auth.AuthResponse{}, auth.ErrTokenExpired
		}
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	claims, err := decoded.AsMap(ctx)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	s.jwtService.RevokeToken(refreshToken)
	return s.issueTokens(u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.AuthResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.AuthResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
		Session: auth.SessionInfo{
			UserID:      u.ID,
			Email:       u.Email,
			Role:        u.Role,
			IsHrOrAdmin: u.IsHrOrAdmin(),
		},
	}, nil
}
