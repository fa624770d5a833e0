package repository

import (
	"context"

	"linkforge/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityRepository is the append-only audit log of a user.
type ActivityRepository interface {
	Append(ctx context.Context, activity *entity.Activity) error
	// ListRecent returns the newest activities first.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Activity, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
