package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-scheduler/controllers"
)

// SetupDoctorRoutes configures all doctor related routes
func SetupDoctorRoutes(app *fiber.App, h *controllers.DoctorController) {
	doctor := app.Group("/doctors")
	doctor.Get("/", h.GetAllDoctors)
	doctor.Post("/", h.CreateDoctor)
	doctor.Put("/:id", h.UpdateDoctor)
	doctor.Delete("/:id", h.DeleteDoctor)
}
