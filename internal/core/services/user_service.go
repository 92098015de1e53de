package services

import (
	"context"
	"fmt"

	"github.com/arogyamitram/am_backend/internal/apperrors"
	"github.com/arogyamitram/am_backend/internal/core/domain"
	portsrepo "github.com/arogyamitram/am_backend/internal/core/ports/repositories"
	portssvc "github.com/arogyamitram/am_backend/internal/core/ports/services"
)

// userService provides authentication against the static identity store.
type userService struct {
	userRepo portsrepo.UserReader
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserReader) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Authenticate resolves the username and compares the password as-is.
// Plaintext comparison against seed data is an accepted property of this
// closed-community deployment; hardening is out of scope.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrInvalidCredentials)
	}
	return user, nil
}

// GetUserByUsername retrieves an account for claim rehydration.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}
