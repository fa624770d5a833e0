package usecase

import (
	"context"

	"linkforge/internal/domain/entity"
)

// RecordActivityInput describes a custom activity entry.
type RecordActivityInput struct {
	Type     entity.ActivityType
	Details  string
	Metadata map[string]any
}

// DashboardUsecase defines the owner's engagement overview.
type DashboardUsecase interface {
	GetStats(ctx context.Context, actor *entity.Actor) (*entity.DashboardStats, error)
	ListActivities(ctx context.Context, actor *entity.Actor, limit int) ([]*entity.Activity, error)
	RecordActivity(ctx context.Context, actor *entity.Actor, input *RecordActivityInput) (*entity.Activity, error)
}
