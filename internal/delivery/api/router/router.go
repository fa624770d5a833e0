// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"linkforge/internal/delivery/api/middleware"
	"linkforge/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	AccountHandler   *handler.AccountHandler
	ProfileHandler   *handler.ProfileHandler
	LinkHandler      *handler.LinkHandler
	DashboardHandler *handler.DashboardHandler
	AdminHandler     *handler.AdminHandler
	PublicHandler    *handler.PublicHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	accountHandler   *handler.AccountHandler
	profileHandler   *handler.ProfileHandler
	linkHandler      *handler.LinkHandler
	dashboardHandler *handler.DashboardHandler
	adminHandler     *handler.AdminHandler
	publicHandler    *handler.PublicHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		accountHandler:   params.AccountHandler,
		profileHandler:   params.ProfileHandler,
		linkHandler:      params.LinkHandler,
		dashboardHandler: params.DashboardHandler,
		adminHandler:     params.AdminHandler,
		publicHandler:    params.PublicHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public pages and click redirects, no authentication
	e.GET("/p/:username", r.publicHandler.Page)
	e.GET("/l/:id", r.publicHandler.Click)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	accountGroup := apiV1.Group("/account")
	{
		accountGroup.GET("", r.accountHandler.GetAccount)
		accountGroup.PUT("", r.accountHandler.UpdateAccount)
		accountGroup.PUT("/password", r.accountHandler.ChangePassword)
		accountGroup.DELETE("", r.accountHandler.DeleteAccount)
	}

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("/design", r.profileHandler.GetDesign)
		profileGroup.PUT("/design", r.profileHandler.UpdateDesign)
		profileGroup.GET("/qr", r.profileHandler.GetQRCode)
	}

	linksGroup := apiV1.Group("/links")
	{
		linksGroup.GET("", r.linkHandler.ListLinks)
		linksGroup.POST("", r.linkHandler.CreateLink)
		linksGroup.PUT("/order", r.linkHandler.ReorderLinks)
		linksGroup.PUT("/:id", r.linkHandler.UpdateLink)
		linksGroup.DELETE("/:id", r.linkHandler.DeleteLink)
		linksGroup.POST("/:id/move", r.linkHandler.MoveLink)
	}

	apiV1.GET("/stats", r.dashboardHandler.GetStats)
	apiV1.GET("/activities", r.dashboardHandler.ListActivities)
	apiV1.POST("/activities", r.dashboardHandler.RecordActivity)

	// Role checks happen in the usecases so the denial carries a reason code
	adminGroup := apiV1.Group("/admin")
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
	}
}
