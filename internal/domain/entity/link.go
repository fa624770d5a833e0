package entity

import (
	"time"

	"github.com/google/uuid"
)

// Link is one outbound URL entry on a profile.
type Link struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	Title       string
	URL         string
	Description string
	Icon        string
	Order       int // Display position, zero-based.
	IsActive    bool
	ClickCount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LinkOrder assigns a display position to a link.
type LinkOrder struct {
	ID    uuid.UUID
	Order int
}

// MoveDirection is the direction of a single-step link move.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// IsValid checks if the MoveDirection is a valid value.
func (d MoveDirection) IsValid() bool {
	return d == MoveUp || d == MoveDown
}
