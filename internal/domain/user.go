package domain

import "time"

// Role classifies registered users.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleHospital  Role = "hospital"
	RoleBloodBank Role = "blood_bank"
)

// ParseRole validates a role submitted at signup.
func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleDonor, RoleHospital, RoleBloodBank:
		return Role(value), true
	}
	return "", false
}

// User is the domain model for registered accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
