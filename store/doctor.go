package store

import (
	"context"
	"fmt"

	"github.com/meinhoongagan/clinic-scheduler/models"
	"github.com/meinhoongagan/clinic-scheduler/utils"
)

var errDoctorNotFound = &utils.NotFoundError{Resource: "Doctor"}

func (s *Store) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	if err := s.db.WithContext(ctx).Order("id").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Store) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	d.ID = 0
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	return nil
}

// UpdateDoctor replaces every field of the doctor with id d.ID. It never
// inserts, so a doctor deleted concurrently stays deleted.
func (s *Store) UpdateDoctor(ctx context.Context, d *models.Doctor) error {
	if !validID(d.ID) {
		return errDoctorNotFound
	}
	res := s.db.WithContext(ctx).Model(d).Select("*").Omit("id").Updates(d)
	if res.Error != nil {
		return fmt.Errorf("update doctor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errDoctorNotFound
	}
	return nil
}

// DeleteDoctor removes the doctor. Appointments that reference it are kept.
func (s *Store) DeleteDoctor(ctx context.Context, id uint) error {
	if !validID(id) {
		return errDoctorNotFound
	}
	res := s.db.WithContext(ctx).Delete(&models.Doctor{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete doctor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errDoctorNotFound
	}
	return nil
}
