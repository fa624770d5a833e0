package handler

import (
	"net/http"

	"linkforge/internal/delivery/api/response"
	"linkforge/internal/delivery/api/validator"
	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AccountHandler serves the signed-in user's own settings.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{accountUC: params.AccountUC}
}

// UpdateAccountRequest is a partial update; omitted fields stay unchanged.
type UpdateAccountRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Username *string `json:"username" validate:"omitempty,min=3,max=20,username"`
	Bio      *string `json:"bio" validate:"omitempty,max=160"`
	Avatar   *string `json:"avatar" validate:"omitempty,url,max=2048"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=6"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// GetAccount returns the signed-in user
func (h *AccountHandler) GetAccount(c echo.Context) error {
	user, err := h.accountUC.GetAccount(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateAccount changes the signed-in user's own fields
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	user, err := h.accountUC.UpdateAccount(c.Request().Context(), deliverycontext.GetActor(c), &usecase.UpdateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ChangePassword handles a password change
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	err := h.accountUC.ChangePassword(c.Request().Context(), deliverycontext.GetActor(c), &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

// DeleteAccount deletes the signed-in user and everything it owns
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	if err := h.accountUC.DeleteAccount(c.Request().Context(), deliverycontext.GetActor(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
