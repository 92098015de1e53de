package dto

import "github.com/arogyamitram/am_backend/internal/core/domain"

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token and the authenticated profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the externally visible account profile. The password never
// leaves the identity store.
type UserResponse struct {
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Phone    string      `json:"phone"`
	Role     domain.Role `json:"role"`
	Org      string      `json:"org"`
}

// ToUserResponse maps a domain user to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Username: u.Username,
		Name:     u.Name,
		Phone:    u.Phone,
		Role:     u.Role,
		Org:      u.Org,
	}
}
