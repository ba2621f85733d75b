package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	apierrors "echoscribe/internal/api/errors"
	"echoscribe/internal/app/auth"
	"echoscribe/internal/app/model"
	"echoscribe/internal/app/repository"
)

// AuthServiceImpl implements AuthService
type AuthServiceImpl struct {
	users     repository.UserDAO
	secretKey []byte
	tokenTTL  time.Duration
	logger    *slog.Logger
}

// NewAuthService creates a new auth service. The signing key is injected
// here and nowhere else.
func NewAuthService(users repository.UserDAO, secretKey []byte, tokenTTL time.Duration, logger *slog.Logger) AuthService {
	return &AuthServiceImpl{
		users:     users,
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// IssueToken verifies credentials against the stored bcrypt hash. A missing
// user and a wrong password produce the same error, so callers cannot probe
// which usernames exist.
func (s *AuthServiceImpl) IssueToken(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apierrors.NewUnauthorizedError("Incorrect username or password")
		}
		s.logger.Error("user lookup failed", "error", err)
		return "", apierrors.NewInternalError("Internal server error")
	}

	if !auth.CheckPassword(user.HashedPassword, password) {
		return "", apierrors.NewUnauthorizedError("Incorrect username or password")
	}

	token, err := auth.GenerateToken(user.Username, s.secretKey, s.tokenTTL)
	if err != nil {
		s.logger.Error("token generation failed", "error", err)
		return "", apierrors.NewInternalError("Internal server error")
	}

	return token, nil
}

// Authenticate verifies signature and expiry, then checks the embedded
// subject still resolves to a stored user. Token validation is stateless:
// there is no session store, only the one user-existence lookup.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*model.User, error) {
	username, err := auth.SubjectFromToken(token, s.secretKey)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		s.logger.Error("user lookup failed", "error", err)
		return nil, err
	}

	return user, nil
}

// CreateUser hashes the password and stores the account. Used by the
// operational provisioning CLI; there is no registration endpoint.
func (s *AuthServiceImpl) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, username, hash)
}
