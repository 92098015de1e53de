package memory

import (
	"context"
	"fmt"

	"github.com/arogyamitram/am_backend/internal/apperrors"
	"github.com/arogyamitram/am_backend/internal/core/domain"
	portsrepo "github.com/arogyamitram/am_backend/internal/core/ports/repositories"
)

// UserRepository is the static identity store. Accounts are fixed at
// construction time, so reads need no locking.
type UserRepository struct {
	users map[string]domain.User
}

// NewUserRepository creates an identity store over the given seed accounts.
func NewUserRepository(users []domain.User) *UserRepository {
	byName := make(map[string]domain.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &UserRepository{users: byName}
}

var _ portsrepo.UserReader = (*UserRepository)(nil)

// FindUserByUsername returns a copy of the account with the given username.
func (r *UserRepository) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrUserNotFound)
	}
	return &u, nil
}
