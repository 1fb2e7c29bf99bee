package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-scheduler/utils"
)

type DoctorController struct {
	doctors DoctorStore
}

func NewDoctorController(doctors DoctorStore) *DoctorController {
	return &DoctorController{doctors: doctors}
}

// GetAllDoctors returns every doctor with days ordered Monday to Sunday and
// times as "HH:MM".
func (h *DoctorController) GetAllDoctors(c *fiber.Ctx) error {
	doctors, err := h.doctors.ListDoctors(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(doctors)
}

func (h *DoctorController) CreateDoctor(c *fiber.Ctx) error {
	var req DoctorRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	doctor, err := req.toModel()
	if err != nil {
		return err
	}

	if err := h.doctors.CreateDoctor(c.UserContext(), doctor); err != nil {
		return err
	}
	return c.JSON(utils.MessageResponse{Message: "Doctor added successfully", ID: doctor.ID})
}

// UpdateDoctor replaces all fields of an existing doctor
func (h *DoctorController) UpdateDoctor(c *fiber.Ctx) error {
	id, err := paramID(c, "Doctor")
	if err != nil {
		return err
	}

	var req DoctorRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	doctor, err := req.toModel()
	if err != nil {
		return err
	}
	doctor.ID = id

	if err := h.doctors.UpdateDoctor(c.UserContext(), doctor); err != nil {
		return err
	}
	return c.JSON(utils.MessageResponse{Message: "Doctor updated successfully"})
}

// DeleteDoctor removes a doctor. Its appointments are left untouched.
func (h *DoctorController) DeleteDoctor(c *fiber.Ctx) error {
	id, err := paramID(c, "Doctor")
	if err != nil {
		return err
	}

	if err := h.doctors.DeleteDoctor(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(utils.MessageResponse{Message: "Doctor deleted successfully"})
}
