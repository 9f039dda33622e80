package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"blackeagles/config"
	"blackeagles/internal/session"
	apperrors "blackeagles/pkg/app_errors"
	"blackeagles/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login checks the shared admin credential and opens a session.
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context, token string) error
	// Authorized reports whether token names a live session.
	Authorized(ctx context.Context, token string) bool
}

type AuthServiceImpl struct {
	username string
	hash     []byte
	sessions session.Store
}

// NewAuthService hashes a plain configured password once at startup.
func NewAuthService(admin config.AdminConfig, sessions session.Store) (AuthService, error) {
	hash := []byte(admin.PasswordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}
	return &AuthServiceImpl{
		username: admin.Username,
		hash:     hash,
		sessions: sessions,
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*session.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.hash, []byte(password))
	if !userOK || passErr != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.sessions.Create(ctx, username)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *AuthServiceImpl) Authorized(ctx context.Context, token string) bool {
	_, err := s.sessions.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSessionNotFound) {
			logger.WithComponent("session").Error("session lookup failed", zap.Error(err))
		}
		return false
	}
	return true
}
