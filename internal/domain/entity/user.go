// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns exactly one link page.
type User struct {
	ID           uuid.UUID
	Email        string // Globally unique, used as the login identifier.
	Username     string // Globally unique, used in the public page URL.
	Name         string
	PasswordHash string
	Role         Role
	Status       Status
	Avatar       string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor returns the authorization descriptor of the user.
func (u *User) Actor() *Actor {
	if u == nil {
		return nil
	}

	return &Actor{ID: u.ID, Role: u.Role, Status: u.Status}
}

// IsActive reports whether the account may sign in and be shown publicly.
func (u *User) IsActive() bool {
	return u != nil && u.Status == StatusActive
}

// UserStats aggregates engagement numbers shown in the admin user list.
type UserStats struct {
	Views          int64
	UniqueVisitors int64
	Links          int64
	LastSeenAt     *time.Time // Time of the most recent visit to the user's page.
}

// UserWithStats pairs a user with its engagement numbers.
type UserWithStats struct {
	User  *User
	Stats UserStats
}
