package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/jwt"
	"github.com/gavinflud/lists/internal/my_errors"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo   UserRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userRepo UserRepository, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Authenticate checks the credential and issues a fresh token pair. Every
// failure maps to the same error so the response does not reveal whether
// the username or the password was wrong.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	if username == "" || password == "" {
		return nil, my_errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, my_errors.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, my_errors.ErrInvalidCredentials
	}

	return s.issuePair(user.Username)
}

// Refresh verifies the presented token's signature and expiry and reissues
// the pair for its subject. The token's access-vs-refresh provenance is not
// checked, matching the original behavior.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := jwt.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, my_errors.ErrInvalidToken
	}

	// the subject must still map to an active user
	user, err := s.userRepo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, my_errors.ErrInvalidToken
	}

	return s.issuePair(user.Username)
}

// Principal resolves an access token into the caller identity used by the
// authorization guards.
func (s *AuthService) Principal(ctx context.Context, accessToken string) (domain.Principal, error) {
	claims, err := jwt.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return domain.Principal{}, my_errors.ErrInvalidToken
	}

	user, err := s.userRepo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return domain.Principal{}, my_errors.ErrInvalidToken
	}

	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = r.Code
	}

	return domain.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    roles,
	}, nil
}

func (s *AuthService) issuePair(username string) (*domain.TokenPair, error) {
	accessToken, err := jwt.GenerateToken(username, s.jwtSecret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := jwt.GenerateToken(username, s.jwtSecret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
