package repositories

import (
	"context"

	"github.com/arogyamitram/am_backend/internal/core/domain"
)

// UserReader defines read operations over the identity store. The store is
// seeded at startup and immutable afterwards, so there is no writer interface.
type UserReader interface {
	// FindUserByUsername retrieves an account by username. Returns
	// apperrors.ErrUserNotFound when the username is absent.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
