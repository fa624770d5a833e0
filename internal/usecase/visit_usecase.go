package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RecordVisitInput identifies the viewed page by OwnerID, or by Username when OwnerID is nil.
type RecordVisitInput struct {
	OwnerID   uuid.UUID
	Username  string
	VisitorID string // Empty for a first-time visitor.
	IP        string
	UserAgent string
}

// RecordVisitOutput returns the visitor identifier the client must keep.
type RecordVisitOutput struct {
	VisitorID    string
	IsNewVisitor bool
}

// VisitUsecase counts public page views.
type VisitUsecase interface {
	RecordVisit(ctx context.Context, input *RecordVisitInput) (*RecordVisitOutput, error)
}
