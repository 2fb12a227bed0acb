package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rashi006/aws-capstone-blood-bridge/internal/api/http/handlers"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/auth"
	"github.com/Rashi006/aws-capstone-blood-bridge/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Dashboard      *handlers.DashboardHandler
	Requests       *handlers.RequestsHandler
	Inventory      *handlers.InventoryHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/signup", cfg.Auth.Signup)
	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireLogin())
	protected.Get("/dashboard", cfg.Dashboard.Show)
	protected.Get("/requests", cfg.Requests.List)
	protected.Post("/requests", cfg.Requests.Submit)
	protected.Get("/inventory", cfg.Inventory.List)
	protected.Post("/inventory/adjust", auth.RequireRole(domain.RoleBloodBank), cfg.Inventory.Adjust)
}
