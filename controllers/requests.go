package controllers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-scheduler/models"
	"github.com/meinhoongagan/clinic-scheduler/utils"
)

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DoctorRequest is the body of both create and update; update replaces
// every field.
type DoctorRequest struct {
	Name           string   `json:"name" validate:"required"`
	Specialization string   `json:"specialization" validate:"required"`
	Qualification  string   `json:"qualification" validate:"required"`
	Days           []string `json:"days" validate:"required,dive,weekday"`
	ReportTime     string   `json:"reportTime" validate:"required,clock"`
	LeaveTime      string   `json:"leaveTime" validate:"required,clock"`
}

func (r *DoctorRequest) toModel() (*models.Doctor, error) {
	days, err := models.ParseWeekdays(r.Days)
	if err != nil {
		return nil, &utils.ValidationError{Field: "days", Reason: err.Error()}
	}
	report, err := models.ParseTimeOfDay(r.ReportTime)
	if err != nil {
		return nil, &utils.ValidationError{Field: "reportTime", Reason: "must be a time of day (HH:MM)"}
	}
	leave, err := models.ParseTimeOfDay(r.LeaveTime)
	if err != nil {
		return nil, &utils.ValidationError{Field: "leaveTime", Reason: "must be a time of day (HH:MM)"}
	}
	return &models.Doctor{
		Name:           r.Name,
		Specialization: r.Specialization,
		Qualification:  r.Qualification,
		Days:           days,
		ReportTime:     report,
		LeaveTime:      leave,
	}, nil
}

type AppointmentRequest struct {
	PatientName string `json:"patientName" validate:"required"`
	DoctorID    *uint  `json:"doctorId" validate:"required"`
	Time        string `json:"time" validate:"required,clock"`
}

func (r *AppointmentRequest) toModel() (*models.Appointment, error) {
	at, err := models.ParseTimeOfDay(r.Time)
	if err != nil {
		return nil, &utils.ValidationError{Field: "time", Reason: "must be a time of day (HH:MM)"}
	}
	return &models.Appointment{
		PatientName: r.PatientName,
		DoctorID:    *r.DoctorID,
		Time:        at,
	}, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseClock(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, err := models.ParseWeekday(fl.Field().String())
		return err == nil
	})
	return v
}

// parseBody decodes the JSON body into req and validates it. Every failure
// is a *utils.ValidationError.
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return &utils.ValidationError{Reason: "Invalid request body"}
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return &utils.ValidationError{Reason: "Invalid request body"}
	}
	return nil
}

func fieldError(fe validator.FieldError) *utils.ValidationError {
	// Namespace is "DoctorRequest.days[1]"; drop the struct name.
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return &utils.ValidationError{Field: field, Reason: "is required"}
	case "clock":
		return &utils.ValidationError{Field: field, Reason: "must be a time of day (HH:MM)"}
	case "weekday":
		return &utils.ValidationError{Field: field, Reason: "must be a weekday name"}
	default:
		return &utils.ValidationError{Field: field, Reason: "is invalid"}
	}
}
