package middleware

import (
	"context"

	"github.com/arogyamitram/am_backend/internal/core/domain"
)

const currentUserKey = contextKey("currentUser")

// CurrentUser is the authenticated identity extracted from a session token.
type CurrentUser struct {
	Username string
	Role     domain.Role
}

// GetCurrentUser retrieves the authenticated identity from a standard
// context. The boolean reports whether auth middleware ran for this request.
func GetCurrentUser(ctx context.Context) (CurrentUser, bool) {
	user, ok := ctx.Value(currentUserKey).(CurrentUser)
	return user, ok
}
