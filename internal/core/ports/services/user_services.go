package services

import (
	"context"

	"github.com/arogyamitram/am_backend/internal/core/domain"
)

// UserSvcFacade exposes the identity store.
type UserSvcFacade interface {
	// Authenticate checks credentials against the static seed accounts.
	// Fails with apperrors.ErrUserNotFound or apperrors.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByUsername retrieves an account; apperrors.ErrUserNotFound if absent.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
