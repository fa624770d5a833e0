package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	"linkforge/internal/domain/repository"
	"linkforge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	recentActivityCount  = 5
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *dashboardService) GetStats(ctx context.Context, actor *entity.Actor) (*entity.DashboardStats, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	stats := &entity.DashboardStats{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := ensureProfile(ctx, repoFactory, actor.ID)
		if err != nil {
			return err
		}
		stats.ViewCount = profile.ViewCount
		stats.UniqueVisitorCount = profile.UniqueVisitorCount

		linkRepo := repoFactory.LinkRepo()
		if stats.ActiveLinks, err = linkRepo.CountActive(ctx, profile.ID); err != nil {
			return errors.Wrap(err, "failed to count active links")
		}
		if stats.TotalClicks, err = linkRepo.SumClicks(ctx, profile.ID); err != nil {
			return errors.Wrap(err, "failed to sum clicks")
		}

		stats.RecentActivities, err = repoFactory.ActivityRepo().ListRecent(ctx, actor.ID, recentActivityCount)
		if err != nil {
			return errors.Wrap(err, "failed to list activities")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard stats")
	}

	return stats, nil
}

// ListActivities returns the newest activities first. A limit outside
// 1..100 falls back to the default of 20.
func (srv *dashboardService) ListActivities(ctx context.Context, actor *entity.Actor, limit int) ([]*entity.Activity, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > maxActivityLimit {
		limit = defaultActivityLimit
	}

	var activities []*entity.Activity
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		activities, err = repoFactory.ActivityRepo().ListRecent(ctx, actor.ID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list activities")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load activities")
	}

	return activities, nil
}

func (srv *dashboardService) RecordActivity(
	ctx context.Context,
	actor *entity.Actor,
	input *usecase.RecordActivityInput,
) (*entity.Activity, error) {
	if err := requireActiveSession(actor); err != nil {
		return nil, err
	}

	activityType := input.Type
	if activityType == "" {
		activityType = entity.ActivityCustom
	}
	if len(activityType) > maxActivityType {
		return nil, invalid("type must be at most 32 characters")
	}
	details := strings.TrimSpace(input.Details)
	if details == "" || utf8.RuneCountInString(details) > maxActivityDetails {
		return nil, invalid("details must be 1 to 500 characters")
	}

	activity := &entity.Activity{
		UserID:   actor.ID,
		Type:     activityType,
		Details:  details,
		Metadata: input.Metadata,
	}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ActivityRepo().Append(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to append activity")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to record activity", slog.Any("userID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute activity transaction")
	}

	return activity, nil
}
