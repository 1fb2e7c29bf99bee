package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-scheduler/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, h *controllers.AppointmentController) {
	appointment := app.Group("/appointments")
	appointment.Get("/", h.GetAllAppointments)
	appointment.Post("/", h.CreateAppointment)
}
