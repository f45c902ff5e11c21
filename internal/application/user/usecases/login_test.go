package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/shared/authorization"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

func reconstructTestUser(t *testing.T, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(3, "Alice", "alice@example.com", "hashed:secret-password", role, nil, nil, time.Now())
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("returns token and profile for valid credentials", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, "alice@example.com", email)
				return reconstructTestUser(t, authorization.RoleAdmin), nil
			},
		}
		issuer := &mockTokenIssuer{
			GenerateFunc: func(userID uint, role authorization.UserRole) (string, error) {
				assert.Equal(t, authorization.RoleAdmin, role)
				return "signed-token", nil
			},
		}

		uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, issuer, log)

		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "alice@example.com",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(3), result.UserID)
		assert.Equal(t, "Alice", result.Name)
		assert.Equal(t, "admin", result.Role)
		assert.Equal(t, "signed-token", result.Token)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return reconstructTestUser(t, authorization.RoleUser), nil
			},
		}

		uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, log)

		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("unknown email gets the same unauthorized answer", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
		}

		uc := NewLoginUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, log)

		_, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "nobody@example.com",
			Password: "secret-password",
		})
		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenIssuer{}, log)

		_, err := uc.Execute(context.Background(), LoginCommand{Email: "alice@example.com"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
