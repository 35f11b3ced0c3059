// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"captions/internal/delivery/api/middleware"
	"captions/internal/delivery/api/router/handler"
	"captions/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// LegacyIdentityWebhookPath is the route the identity provider was first configured with.
const LegacyIdentityWebhookPath = "/clerk-users-webhook"

type RouterParams struct {
	fx.In

	UserHandler            *handler.UserHandler
	ProjectHandler         *handler.ProjectHandler
	IdentityWebhookHandler *handler.IdentityWebhookHandler
	AuthMiddleware         *middleware.AuthMiddleware
	Gatherer               prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler            *handler.UserHandler
	projectHandler         *handler.ProjectHandler
	identityWebhookHandler *handler.IdentityWebhookHandler
	authMiddleware         *middleware.AuthMiddleware
	gatherer               prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:            params.UserHandler,
		projectHandler:         params.ProjectHandler,
		identityWebhookHandler: params.IdentityWebhookHandler,
		authMiddleware:         params.AuthMiddleware,
		gatherer:               params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))

	// Identity provider webhooks are authenticated by signature, not by caller token
	e.POST("/webhooks/identity", r.identityWebhookHandler.HandleIdentityEvent)
	e.POST(LegacyIdentityWebhookPath, r.identityWebhookHandler.HandleIdentityEvent)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/me", r.userHandler.GetMe)

	projectsGroup := apiV1.Group("/projects")
	{
		projectsGroup.GET("", r.projectHandler.ListProjects)
		projectsGroup.GET("/:id", r.projectHandler.GetProject)
		projectsGroup.GET("/:id/qr", r.projectHandler.GetProjectQR)
	}
}
