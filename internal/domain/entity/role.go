// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege tier of an account.
type Role string

const (
	// RoleUser is a regular account that manages only its own link page.
	RoleUser Role = "USER"
	// RoleAdmin may manage USER accounts.
	RoleAdmin Role = "ADMIN"
	// RoleFounder may manage USER and ADMIN accounts.
	RoleFounder Role = "FOUNDER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleFounder:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role grants access to user management.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleFounder:
		return true
	case RoleUser:
		return false
	default:
		return false
	}
}

// Status represents the lifecycle state of an account.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusInactive  Status = "INACTIVE"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusInactive:
		return true
	default:
		return false
	}
}
