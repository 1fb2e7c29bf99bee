package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/meinhoongagan/clinic-scheduler/models"
	"github.com/meinhoongagan/clinic-scheduler/utils"
)

var errUsernameTaken = &utils.ConflictError{Message: "Username already exists"}

// CreateUser inserts u and fills in its id. A username that is already
// registered yields a *utils.ConflictError.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if count > 0 {
			return errUsernameTaken
		}

		return createUserError(tx.Create(u).Error)
	})
}

// createUserError maps the unique index violation left by a concurrent
// registration of the same username to the conflict error.
func createUserError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errUsernameTaken
	}
	return fmt.Errorf("create user: %w", err)
}

// UserByUsername returns a *utils.NotFoundError when no user has that name.
func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &utils.NotFoundError{Resource: "User"}
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
