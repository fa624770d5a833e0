package impl

import (
	"context"
	"strings"
	"testing"

	"linkforge/internal/domain/entity"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dashboardServiceFixtures struct {
	repoFixtures
	service usecase.DashboardUsecase
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	repos := newRepoFixtures(t)

	return dashboardServiceFixtures{
		repoFixtures: repos,
		service: NewDashboardService(DashboardServiceParams{
			TxManager: repos.txManager,
			Logger:    newDiscardLogger(),
		}),
	}
}

func TestDashboardService_GetStats(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	actor := newActor(entity.RoleUser)
	profile := newProfile(actor.ID)
	profile.ViewCount = 12
	profile.UniqueVisitorCount = 5
	recent := []*entity.Activity{{Type: entity.ActivityLogin}}

	fx.profileRepo.EXPECT().FindByOwner(ctx, actor.ID).Return(profile, nil)
	fx.linkRepo.EXPECT().CountActive(ctx, profile.ID).Return(int64(3), nil)
	fx.linkRepo.EXPECT().SumClicks(ctx, profile.ID).Return(int64(40), nil)
	fx.activityRepo.EXPECT().ListRecent(ctx, actor.ID, 5).Return(recent, nil)

	stats, err := fx.service.GetStats(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{
		ViewCount:          12,
		UniqueVisitorCount: 5,
		ActiveLinks:        3,
		TotalClicks:        40,
		RecentActivities:   recent,
	}, stats)
}

func TestDashboardService_ListActivities_Limit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"explicit", 7, 7},
		{"zero uses default", 0, 20},
		{"too large uses default", 1000, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestDashboardService(t)
			actor := newActor(entity.RoleUser)
			fx.activityRepo.EXPECT().ListRecent(mock.Anything, actor.ID, tt.wantLimit).Return(nil, nil)

			_, err := fx.service.ListActivities(context.Background(), actor, tt.limit)
			require.NoError(t, err)
		})
	}
}

func TestDashboardService_RecordActivity(t *testing.T) {
	fx := createTestDashboardService(t)
	actor := newActor(entity.RoleUser)

	fx.activityRepo.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(a *entity.Activity) bool {
			return a.UserID == actor.ID && a.Type == entity.ActivityCustom && a.Details == "Shared my page"
		})).
		Return(nil)

	activity, err := fx.service.RecordActivity(context.Background(), actor, &usecase.RecordActivityInput{Details: " Shared my page "})
	require.NoError(t, err)
	assert.Equal(t, entity.ActivityCustom, activity.Type)

	_, err = fx.service.RecordActivity(context.Background(), actor, &usecase.RecordActivityInput{Details: ""})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDashboardService_RecordActivity_TypeTooLong(t *testing.T) {
	fx := createTestDashboardService(t)
	actor := newActor(entity.RoleUser)

	_, err := fx.service.RecordActivity(context.Background(), actor, &usecase.RecordActivityInput{
		Type:    entity.ActivityType(strings.Repeat("X", 33)),
		Details: "Shared my page",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
