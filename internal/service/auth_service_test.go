package service_test

import (
	"context"
	"testing"
	"time"

	"blackeagles/config"
	"blackeagles/internal/service"
	"blackeagles/internal/session"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	cfg := config.LoadTestConfig()

	svc, err := service.NewAuthService(cfg.Admin, session.NewMemoryStore(time.Hour))
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		sess, err := svc.Login(ctx, " admin ", "blackeagles2025")
		require.NoError(t, err)
		assert.True(t, svc.Authorized(ctx, sess.Token))

		require.NoError(t, svc.Logout(ctx, sess.Token))
		assert.False(t, svc.Authorized(ctx, sess.Token))
	})

	t.Run("Failed - wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin", "nope")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Failed - wrong user", func(t *testing.T) {
		_, err := svc.Login(ctx, "root", "blackeagles2025")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Unknown token", func(t *testing.T) {
		assert.False(t, svc.Authorized(ctx, "forged"))
		assert.NoError(t, svc.Logout(ctx, ""))
	})

	t.Run("Configured hash", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		require.NoError(t, err)

		hashed, err := service.NewAuthService(config.AdminConfig{Username: "admin", PasswordHash: string(hash)}, session.NewMemoryStore(time.Hour))
		require.NoError(t, err)

		_, err = hashed.Login(ctx, "admin", "s3cret")
		assert.NoError(t, err)
	})
}
