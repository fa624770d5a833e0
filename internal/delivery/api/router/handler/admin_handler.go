package handler

import (
	"net/http"

	"linkforge/internal/delivery/api/response"
	"linkforge/internal/delivery/api/validator"
	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves user management. Authorization is decided by the usecase.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// UpdateUserRequest is a partial update of another account.
type UpdateUserRequest struct {
	Name     *string        `json:"name" validate:"omitempty,min=2,max=50"`
	Email    *string        `json:"email" validate:"omitempty,email,max=255"`
	Username *string        `json:"username" validate:"omitempty,min=3,max=20,username"`
	Role     *entity.Role   `json:"role" validate:"omitempty,oneof=USER ADMIN FOUNDER"`
	Status   *entity.Status `json:"status" validate:"omitempty,oneof=ACTIVE SUSPENDED INACTIVE"`
}

// ListUsers returns every account with its engagement numbers
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAdminUsersResponse(users))
}

// UpdateUser edits another account
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	user, err := h.adminUC.UpdateUser(c.Request().Context(), deliverycontext.GetActor(c), targetID, &usecase.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser deletes another account
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), deliverycontext.GetActor(c), targetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
