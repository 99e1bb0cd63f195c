// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"alumnihub/internal/delivery/http/middleware"
	"alumnihub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AlumniHandler  *handler.AlumniHandler
	AdminHandler   *handler.AdminHandler
	EventHandler   *handler.EventHandler
	AlbumHandler   *handler.AlbumHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	alumniHandler  *handler.AlumniHandler
	adminHandler   *handler.AdminHandler
	eventHandler   *handler.EventHandler
	albumHandler   *handler.AlbumHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		alumniHandler:  params.AlumniHandler,
		adminHandler:   params.AdminHandler,
		eventHandler:   params.EventHandler,
		albumHandler:   params.AlbumHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
		authGroup.PUT("/change-password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Public directory routes; profile updates require a session
	alumniGroup := api.Group("/alumni")
	{
		alumniGroup.GET("", r.alumniHandler.List)
		alumniGroup.GET("/stats/get-stats", r.alumniHandler.Stats)
		alumniGroup.GET("/map/data", r.alumniHandler.MapData)
		alumniGroup.GET("/:id", r.alumniHandler.Get)
		alumniGroup.PUT("/:id", r.alumniHandler.Update, r.authMiddleware.Authenticate)
	}

	// Admin routes that require authentication and admin rights
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/pending", r.adminHandler.Pending)
		adminGroup.PUT("/approve/:id", r.adminHandler.Approve)
		adminGroup.PUT("/reject/:id", r.adminHandler.Reject)
		adminGroup.PUT("/make-admin/:id", r.adminHandler.MakeAdmin)
		adminGroup.GET("/dashboard/alumni/all", r.adminHandler.DashboardAlumni)
		adminGroup.GET("/dashboard/stats", r.adminHandler.DashboardStats)
	}

	// Event catalogue
	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", r.eventHandler.List)
		eventGroup.GET("/:id", r.eventHandler.Get)
		eventGroup.POST("", r.eventHandler.Create)
		eventGroup.PUT("/:id", r.eventHandler.Update)
		eventGroup.DELETE("/:id", r.eventHandler.Delete)
	}

	// Gallery index
	api.GET("/albums", r.albumHandler.List)
}
