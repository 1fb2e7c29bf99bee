package store

import (
	"context"
	"math"

	"gorm.io/gorm"
)

// Store is the relational persistence layer shared by every controller.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// validID reports whether id fits the bigint primary key columns. Nothing
// larger can name a row.
func validID(id uint) bool {
	return uint64(id) <= math.MaxInt64
}
