package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-scheduler/models"
	"github.com/meinhoongagan/clinic-scheduler/utils"
)

// UserStore persists users. CreateUser reports a taken username as a
// *utils.ConflictError; UserByUsername reports a missing user as a
// *utils.NotFoundError.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// DoctorStore persists doctors. Update and delete of an unknown id report a
// *utils.NotFoundError.
type DoctorStore interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, d *models.Doctor) error
	UpdateDoctor(ctx context.Context, d *models.Doctor) error
	DeleteDoctor(ctx context.Context, id uint) error
}

// AppointmentStore persists appointments. CreateAppointment reports an
// unknown doctor as a *utils.NotFoundError.
type AppointmentStore interface {
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, a *models.Appointment) error
}

// paramID reads a positive integer path parameter. Anything else cannot name
// a record, so it is reported as not found.
func paramID(c *fiber.Ctx, resource string) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, &utils.NotFoundError{Resource: resource}
	}
	return uint(id), nil
}
