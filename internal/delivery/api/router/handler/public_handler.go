package handler

import (
	"log/slog"
	"net/http"

	"linkforge/config"
	"linkforge/internal/delivery/api/response"
	deliverycontext "linkforge/internal/delivery/context"
	domainerrors "linkforge/internal/domain/errors"
	"linkforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PublicHandlerParams holds dependencies for PublicHandler, injected by Fx.
type PublicHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	VisitUC   usecase.VisitUsecase
	LinkUC    usecase.LinkUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// PublicHandler serves anonymous visitors: the link page and click redirects.
type PublicHandler struct {
	profileUC usecase.ProfileUsecase
	visitUC   usecase.VisitUsecase
	linkUC    usecase.LinkUsecase
	config    *config.Config
	logger    *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler
func NewPublicHandler(params PublicHandlerParams) *PublicHandler {
	return &PublicHandler{
		profileUC: params.ProfileUC,
		visitUC:   params.VisitUC,
		linkUC:    params.LinkUC,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// Page returns a public page and counts the view. The visitor cookie is
// issued on the first visit and refreshed on every later one.
func (h *PublicHandler) Page(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.profileUC.GetPublicPage(ctx, c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var visitorID string
	if cookie, err := c.Cookie(h.config.Visitor.CookieName); err == nil {
		visitorID = cookie.Value
	}

	visit, err := h.visitUC.RecordVisit(ctx, &usecase.RecordVisitInput{
		OwnerID:   page.User.ID,
		VisitorID: visitorID,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.config.Visitor.CookieName,
		Value:    visit.VisitorID,
		Path:     "/",
		MaxAge:   int(h.config.Visitor.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.config.HTTP.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	if visit.IsNewVisitor {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("New visitor", slog.String("username", page.User.Username))
	}

	return response.Success(c, http.StatusOK, toPublicPageResponse(page))
}

// Click counts a click and redirects to the link target
func (h *PublicHandler) Click(c echo.Context) error {
	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrLinkNotFound)
	}

	target, err := h.linkUC.RecordClick(c.Request().Context(), linkID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, target)
}
