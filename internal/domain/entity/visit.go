package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit is an immutable record of one public page view.
type Visit struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	VisitorID string // Opaque token persisted client-side.
	IP        string
	UserAgent string
	CreatedAt time.Time
}
