package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/meinhoongagan/clinic-scheduler/models"
)

func (s *Store) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	if err := s.db.WithContext(ctx).Order("id").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

// CreateAppointment inserts a after checking that its doctor exists.
// Working hours and overlapping bookings are not checked.
func (s *Store) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	a.ID = 0
	if !validID(a.DoctorID) {
		return errDoctorNotFound
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Doctor{}).Where("id = ?", a.DoctorID).Count(&count).Error; err != nil {
			return fmt.Errorf("check doctor: %w", err)
		}
		if count == 0 {
			return errDoctorNotFound
		}

		if err := tx.Create(a).Error; err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}
		return nil
	})
}
