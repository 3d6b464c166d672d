package entity

import (
	"time"
)

// Role is the access level of a user.
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// MaxOwners is the number of owner accounts allowed system-wide.
const MaxOwners = 2

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleStaff
}

// User represents an account able to sign in.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User.
func NewUser(username, passwordHash string, role Role) *User {
	now := time.Now().UTC()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
