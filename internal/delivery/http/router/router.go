// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rotulos/internal/delivery/http/middleware"
	"rotulos/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	IngestHandler  *handler.IngestHandler
	OrderHandler   *handler.OrderHandler
	LabelHandler   *handler.LabelHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	ingestHandler  *handler.IngestHandler
	orderHandler   *handler.OrderHandler
	labelHandler   *handler.LabelHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		ingestHandler:  params.IngestHandler,
		orderHandler:   params.OrderHandler,
		labelHandler:   params.LabelHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/ingest", r.ingestHandler.Ingest)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PATCH("/:id", r.orderHandler.Update)
		orderGroup.PUT("/:id/selected", r.orderHandler.SetSelected)
		orderGroup.DELETE("/:id", r.orderHandler.Delete)
	}

	// Label rendering also requires authentication
	labelGroup := e.Group("/labels")
	labelGroup.Use(r.authMiddleware.Authenticate)
	{
		labelGroup.POST("", r.labelHandler.Build)
	}

	catalogGroup := e.Group("/catalog")
	catalogGroup.Use(r.authMiddleware.Authenticate)
	{
		catalogGroup.GET("/suggestions", r.orderHandler.Suggestions)
	}
}
