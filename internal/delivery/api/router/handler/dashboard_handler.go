package handler

import (
	"net/http"
	"strconv"

	"linkforge/internal/delivery/api/response"
	"linkforge/internal/delivery/api/validator"
	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	"linkforge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
}

// DashboardHandler serves engagement numbers and the activity log.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{dashboardUC: params.DashboardUC}
}

// RecordActivityRequest represents the request body for a custom activity entry
type RecordActivityRequest struct {
	Type     entity.ActivityType `json:"type" validate:"omitempty,max=32"`
	Details  string              `json:"details" validate:"required,max=500"`
	Metadata map[string]any      `json:"metadata"`
}

// GetStats returns the dashboard summary
func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboardUC.GetStats(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &StatsResponse{
		ViewCount:          stats.ViewCount,
		UniqueVisitorCount: stats.UniqueVisitorCount,
		ActiveLinks:        stats.ActiveLinks,
		TotalClicks:        stats.TotalClicks,
		RecentActivities:   toActivitiesResponse(stats.RecentActivities),
	})
}

// ListActivities returns the newest activities, ?limit= defaults to 20
func (h *DashboardHandler) ListActivities(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a number")
		}
		limit = parsed
	}

	activities, err := h.dashboardUC.ListActivities(c.Request().Context(), deliverycontext.GetActor(c), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toActivitiesResponse(activities))
}

// RecordActivity appends a custom activity entry
func (h *DashboardHandler) RecordActivity(c echo.Context) error {
	var req RecordActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	activity, err := h.dashboardUC.RecordActivity(c.Request().Context(), deliverycontext.GetActor(c), &usecase.RecordActivityInput{
		Type:     req.Type,
		Details:  req.Details,
		Metadata: req.Metadata,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toActivitiesResponse([]*entity.Activity{activity})[0])
}
