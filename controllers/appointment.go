package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-scheduler/utils"
)

type AppointmentController struct {
	appointments AppointmentStore
}

func NewAppointmentController(appointments AppointmentStore) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

// GetAllAppointments returns every appointment. The doctor is given by id
// only.
func (h *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	appointments, err := h.appointments.ListAppointments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(appointments)
}

// CreateAppointment books a patient with an existing doctor. The time is not
// checked against the doctor's working days or hours, and double bookings
// are allowed.
func (h *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	var req AppointmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	appointment, err := req.toModel()
	if err != nil {
		return err
	}

	if err := h.appointments.CreateAppointment(c.UserContext(), appointment); err != nil {
		return err
	}
	return c.JSON(utils.MessageResponse{Message: "Appointment booked successfully", ID: appointment.ID})
}
