package handler

import (
	"net/http"

	"linkforge/internal/delivery/api/response"
	"linkforge/internal/delivery/api/validator"
	deliverycontext "linkforge/internal/delivery/context"
	"linkforge/internal/domain/entity"
	"linkforge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the page design and QR code of the signed-in user.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateDesignRequest is a partial design update; omitted fields stay unchanged.
type UpdateDesignRequest struct {
	Title             *string `json:"title" validate:"omitempty,max=100"`
	Description       *string `json:"description" validate:"omitempty,max=500"`
	Avatar            *string `json:"avatar" validate:"omitempty,url,max=2048"`
	Theme             *string `json:"theme" validate:"omitempty,max=50"`
	BackgroundColor   *string `json:"backgroundColor" validate:"omitempty,hexcolor"`
	TextColor         *string `json:"textColor" validate:"omitempty,hexcolor"`
	Font              *string `json:"font" validate:"omitempty,max=100"`
	ButtonStyle       *string `json:"buttonStyle" validate:"omitempty,oneof=solid outline soft shadow"`
	ButtonColor       *string `json:"buttonColor" validate:"omitempty,hexcolor"`
	ButtonTextColor   *string `json:"buttonTextColor" validate:"omitempty,hexcolor"`
	Animation         *string `json:"animation" validate:"omitempty,oneof=none fade slide bounce"`
	BackgroundPattern *string `json:"backgroundPattern" validate:"omitempty,oneof=none dots grid waves"`
	CustomCSS         *string `json:"customCss" validate:"omitempty,max=10000"`
	IsPublic          *bool   `json:"isPublic"`
}

func (r *UpdateDesignRequest) toDesign() *entity.ProfileDesign {
	return &entity.ProfileDesign{
		Title:             r.Title,
		Description:       r.Description,
		Avatar:            r.Avatar,
		Theme:             r.Theme,
		BackgroundColor:   r.BackgroundColor,
		TextColor:         r.TextColor,
		Font:              r.Font,
		ButtonStyle:       r.ButtonStyle,
		ButtonColor:       r.ButtonColor,
		ButtonTextColor:   r.ButtonTextColor,
		Animation:         r.Animation,
		BackgroundPattern: r.BackgroundPattern,
		CustomCSS:         r.CustomCSS,
		IsPublic:          r.IsPublic,
	}
}

// GetDesign returns the page design, creating the default one on first access
func (h *ProfileHandler) GetDesign(c echo.Context) error {
	profile, err := h.profileUC.GetDesign(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// UpdateDesign applies a partial design update
func (h *ProfileHandler) UpdateDesign(c echo.Context) error {
	var req UpdateDesignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid design input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	profile, err := h.profileUC.UpdateDesign(c.Request().Context(), deliverycontext.GetActor(c), req.toDesign())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// GetQRCode returns a PNG QR code of the public page URL
func (h *ProfileHandler) GetQRCode(c echo.Context) error {
	png, err := h.profileUC.GetProfileQRCode(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
