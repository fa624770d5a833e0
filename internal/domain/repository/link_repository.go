package repository

import (
	"context"

	"linkforge/internal/domain/entity"
	"linkforge/internal/errors"

	"github.com/google/uuid"
)

// ErrLinkNotFound is returned when a link is not found.
var ErrLinkNotFound = errors.New("link not found")

// LinkUpdate is a partial update of a link. Nil fields are left unchanged.
type LinkUpdate struct {
	Title       *string
	URL         *string
	Description *string
	Icon        *string
	IsActive    *bool
}

// LinkRepository persists the links of a profile.
type LinkRepository interface {
	// ListByProfile returns the profile's links sorted by order.
	ListByProfile(ctx context.Context, profileID uuid.UUID, activeOnly bool) ([]*entity.Link, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Link, error)
	Insert(ctx context.Context, link *entity.Link) error
	Update(ctx context.Context, id uuid.UUID, update LinkUpdate) (*entity.Link, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProfile(ctx context.Context, profileID uuid.UUID) error

	// BulkSetOrder writes all assignments or none of them.
	BulkSetOrder(ctx context.Context, profileID uuid.UUID, orders []entity.LinkOrder) error

	// IncrementClickCount atomically adds one click to the link.
	IncrementClickCount(ctx context.Context, id uuid.UUID) error

	CountActive(ctx context.Context, profileID uuid.UUID) (int64, error)
	SumClicks(ctx context.Context, profileID uuid.UUID) (int64, error)
}
