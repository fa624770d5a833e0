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

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	LinkUC usecase.LinkUsecase
}

// LinkHandler serves the signed-in user's links.
type LinkHandler struct {
	linkUC usecase.LinkUsecase
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	return &LinkHandler{linkUC: params.LinkUC}
}

// CreateLinkRequest represents the request body for adding a link
type CreateLinkRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon" validate:"max=50"`
}

// UpdateLinkRequest is a partial update of a link
type UpdateLinkRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Icon        *string `json:"icon" validate:"omitempty,max=50"`
	IsActive    *bool   `json:"isActive"`
}

// MoveLinkRequest moves a link one position
type MoveLinkRequest struct {
	Direction entity.MoveDirection `json:"direction" validate:"required,oneof=up down"`
}

// ReorderLinksRequest lists link ids in their new display order
type ReorderLinksRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// ListLinks returns all links of the signed-in user in display order
func (h *LinkHandler) ListLinks(c echo.Context) error {
	links, err := h.linkUC.ListLinks(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLinksResponse(links))
}

// CreateLink appends a link to the page
func (h *LinkHandler) CreateLink(c echo.Context) error {
	var req CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	link, err := h.linkUC.CreateLink(c.Request().Context(), deliverycontext.GetActor(c), &usecase.CreateLinkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toLinkResponse(link))
}

// UpdateLink edits a link
func (h *LinkHandler) UpdateLink(c echo.Context) error {
	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid link ID")
	}

	var req UpdateLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	link, err := h.linkUC.UpdateLink(c.Request().Context(), deliverycontext.GetActor(c), linkID, &usecase.UpdateLinkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLinkResponse(link))
}

// DeleteLink removes a link
func (h *LinkHandler) DeleteLink(c echo.Context) error {
	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid link ID")
	}

	if err := h.linkUC.DeleteLink(c.Request().Context(), deliverycontext.GetActor(c), linkID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Link deleted successfully"})
}

// MoveLink swaps a link with its neighbour and returns the new order
func (h *LinkHandler) MoveLink(c echo.Context) error {
	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid link ID")
	}

	var req MoveLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid move input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	links, err := h.linkUC.MoveLink(c.Request().Context(), deliverycontext.GetActor(c), linkID, req.Direction)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLinksResponse(links))
}

// ReorderLinks assigns the display order of the listed links
func (h *LinkHandler) ReorderLinks(c echo.Context) error {
	var req ReorderLinksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	links, err := h.linkUC.ReorderLinks(c.Request().Context(), deliverycontext.GetActor(c), req.IDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLinksResponse(links))
}
