package domain

// Role determines which views and operations an account may use.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
)

// User represents an account in the identity store. Accounts exist only as
// static seed data; there is no self-registration.
type User struct {
	Username string `json:"username"` // Primary key
	Password string `json:"-"`       // Plaintext, compared as-is (closed-community prototype)
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     Role   `json:"role"`
	Org      string `json:"org"`
}
