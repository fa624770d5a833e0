package entity

import "github.com/google/uuid"

// Actor is the authenticated identity performing a request.
// A nil *Actor means the request is anonymous.
type Actor struct {
	ID     uuid.UUID
	Role   Role
	Status Status
}
