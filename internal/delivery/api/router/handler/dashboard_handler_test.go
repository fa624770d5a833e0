package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"linkforge/internal/domain/entity"
	mockUC "linkforge/internal/mocks/usecase"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDashboardHandler(t *testing.T) (*DashboardHandler, *mockUC.MockDashboardUsecase) {
	dashboardUC := mockUC.NewMockDashboardUsecase(t)

	return NewDashboardHandler(DashboardHandlerParams{DashboardUC: dashboardUC}), dashboardUC
}

func TestDashboardHandler_GetStats(t *testing.T) {
	h, dashboardUC := createTestDashboardHandler(t)
	actor := newActor(entity.RoleUser)

	dashboardUC.EXPECT().GetStats(mock.Anything, actor).Return(&entity.DashboardStats{
		ViewCount:          120,
		UniqueVisitorCount: 40,
		ActiveLinks:        3,
		TotalClicks:        17,
		RecentActivities: []*entity.Activity{
			{ID: uuid.New(), UserID: actor.ID, Type: entity.ActivityLinkCreated, Details: "Added link Blog", CreatedAt: time.Now()},
		},
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/stats", "", actor)
	require.NoError(t, h.GetStats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got StatsResponse
	decodeData(t, rec, &got)
	assert.Equal(t, int64(120), got.ViewCount)
	assert.Equal(t, int64(40), got.UniqueVisitorCount)
	assert.Equal(t, int64(17), got.TotalClicks)
	require.Len(t, got.RecentActivities, 1)
	assert.Equal(t, entity.ActivityLinkCreated, got.RecentActivities[0].Type)
}

func TestDashboardHandler_ListActivities_Limit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"default", "", 0},
		{"explicit", "?limit=5", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dashboardUC := createTestDashboardHandler(t)
			actor := newActor(entity.RoleUser)

			dashboardUC.EXPECT().ListActivities(mock.Anything, actor, tt.wantLimit).Return([]*entity.Activity{}, nil).Once()

			c, rec := newTestContext(http.MethodGet, "/api/v1/activities"+tt.query, "", actor)
			require.NoError(t, h.ListActivities(c))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestDashboardHandler_ListActivities_BadLimit(t *testing.T) {
	h, _ := createTestDashboardHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/activities?limit=ten", "", newActor(entity.RoleUser))
	require.NoError(t, h.ListActivities(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_LIMIT", decodeEnvelope(t, rec).Error.Code)
}

func TestDashboardHandler_RecordActivity(t *testing.T) {
	h, dashboardUC := createTestDashboardHandler(t)
	actor := newActor(entity.RoleUser)
	recorded := &entity.Activity{ID: uuid.New(), UserID: actor.ID, Type: entity.ActivityCustom, Details: "Shared my page"}

	dashboardUC.EXPECT().RecordActivity(mock.Anything, actor, &usecase.RecordActivityInput{Details: "Shared my page"}).
		Return(recorded, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/api/v1/activities", `{"details":"Shared my page"}`, actor)
	require.NoError(t, h.RecordActivity(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got ActivityResponse
	decodeData(t, rec, &got)
	assert.Equal(t, recorded.ID, got.ID)
	assert.Equal(t, entity.ActivityCustom, got.Type)
}

func TestDashboardHandler_RecordActivity_TypeTooLong(t *testing.T) {
	h, _ := createTestDashboardHandler(t)
	body := `{"type":"` + strings.Repeat("X", 33) + `","details":"Shared my page"}`

	c, rec := newTestContext(http.MethodPost, "/api/v1/activities", body, newActor(entity.RoleUser))
	require.NoError(t, h.RecordActivity(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}
