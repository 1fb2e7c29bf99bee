package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-scheduler/controllers"
)

// SetupAuthRoutes configures registration and login. Both sit behind the
// credential rate limiter.
func SetupAuthRoutes(app *fiber.App, h *controllers.AuthController, limit fiber.Handler) {
	app.Post("/register", limit, h.Register)
	app.Post("/login", limit, h.Login)
}
