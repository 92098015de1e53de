package services_test

import (
	"context"
	"testing"

	"github.com/arogyamitram/am_backend/internal/adapters/store/memory"
	"github.com/arogyamitram/am_backend/internal/apperrors"
	"github.com/arogyamitram/am_backend/internal/core/domain"
	portssvc "github.com/arogyamitram/am_backend/internal/core/ports/services"
	"github.com/arogyamitram/am_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() (context.Context, portssvc.UserSvcFacade) {
	return context.Background(), services.NewUserService(memory.NewUserRepository(memory.SeedUsers()))
}

func TestAuthenticateSuccess(t *testing.T) {
	ctx, svc := newUserService()

	user, err := svc.Authenticate(ctx, "donor1", "donor123")

	require.NoError(t, err)
	assert.Equal(t, "donor1", user.Username)
	assert.Equal(t, domain.RoleDonor, user.Role)
	assert.Equal(t, "Rahul Sharma", user.Name)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	ctx, svc := newUserService()

	user, err := svc.Authenticate(ctx, "donor1", "wrong")

	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	ctx, svc := newUserService()

	user, err := svc.Authenticate(ctx, "ghost", "donor123")

	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestGetUserByUsername(t *testing.T) {
	ctx, svc := newUserService()

	user, err := svc.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	_, err = svc.GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
