package models

import "time"

// User is the sole persisted entity: an account with a role and a reward-point
// balance. The password hash never appears in serialized output.
type User struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	Role               string    `json:"role"`
	Points             int64     `json:"points"`
	HasPurchasedTokens bool      `json:"hasPurchasedTokens"`
	CreatedAt          time.Time `json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
