package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/core/auth"
	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

// AuthService implements signup, signin and product key minting.
type AuthService struct {
	repo   ports.UserRepository
	hasher *auth.PasswordHasher
	keys   *auth.ProductKeyMinter
	tokens *auth.TokenService
	log    zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher *auth.PasswordHasher,
	keys *auth.ProductKeyMinter,
	tokens *auth.TokenService,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, keys: keys, tokens: tokens, log: log}
}

// Signup registers a new identity and returns its first session token.
// Any role other than BUYER needs a product key minted for the same email
// and role.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (string, error) {
	if !in.Role.IsValid() {
		return "", domain.ErrInvalidRole
	}
	email := normalizeEmail(in.Email)

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return "", domain.ErrAccountExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", fmt.Errorf("signup: lookup email: %w", err)
	}

	if in.Role.Privileged() && !s.keys.Verify(email, in.Role, in.ProductKey) {
		s.log.Info().Str("email", email).Str("role", string(in.Role)).Msg("signup rejected: invalid product key")
		return "", domain.ErrInvalidProductKey
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("signup: hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return "", err
		}
		return "", fmt.Errorf("signup: create user: %w", err)
	}

	s.log.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")

	return s.issue(created)
}

// Signin checks a password and returns a session token. Unknown emails and
// wrong passwords fail with the same error.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("signin: lookup email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

// ProductKey mints the key that lets email register with role.
func (s *AuthService) ProductKey(email string, role domain.Role) (string, error) {
	if !role.IsValid() {
		return "", domain.ErrInvalidRole
	}
	key, err := s.keys.Mint(normalizeEmail(email), role)
	if err != nil {
		return "", fmt.Errorf("mint product key: %w", err)
	}
	return key, nil
}

func (s *AuthService) issue(user *domain.User) (string, error) {
	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
