package repository

import (
	"context"

	"linkforge/internal/domain/entity"
	"linkforge/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when an owner has no profile.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the one link page profile each user owns.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error)

	// LockByOwner loads the profile and holds a row lock until the surrounding
	// transaction ends. It serializes writers that touch the same profile.
	LockByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error)

	CreateDefault(ctx context.Context, profile *entity.Profile) error

	// FindOrCreateDefault returns the owner's profile, creating it from
	// defaults when it does not exist yet. Concurrent calls converge on one row.
	FindOrCreateDefault(ctx context.Context, defaults *entity.Profile) (*entity.Profile, error)

	Update(ctx context.Context, profile *entity.Profile) error

	// IncrementViewCount atomically adds delta to the view counter.
	IncrementViewCount(ctx context.Context, ownerID uuid.UUID, delta int64) error

	// IncrementUniqueVisitors atomically adds delta to the unique visitor counter.
	IncrementUniqueVisitors(ctx context.Context, ownerID uuid.UUID, delta int64) error

	Delete(ctx context.Context, ownerID uuid.UUID) error
}
