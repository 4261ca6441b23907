package models

import "github.com/google/uuid"

// Role is one of the two fixed roles. Managers create tasks and register
// employees; employees work on tasks assigned to them.
type Role string

const (
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}

// User is immutable once created. PasswordHash holds the opaque
// "hash:salt" record produced by the password hasher; callers never
// inspect its contents.
type User struct {
	ID           uuid.UUID `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
}
