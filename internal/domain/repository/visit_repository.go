package repository

import (
	"context"
	"time"

	"linkforge/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitRepository is the append-only log of page views.
type VisitRepository interface {
	Append(ctx context.Context, visit *entity.Visit) error

	// ExistsForVisitor reports whether the visitor has viewed the owner's page before.
	ExistsForVisitor(ctx context.Context, ownerID uuid.UUID, visitorID string) (bool, error)

	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountDistinctVisitors(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// LastVisitAt returns nil when the page was never viewed.
	LastVisitAt(ctx context.Context, ownerID uuid.UUID) (*time.Time, error)

	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
