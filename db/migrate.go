package db

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/meinhoongagan/clinic-scheduler/models"
)

// Migrate brings the schema up to date. Tables created by the earlier
// deployment are converted first: a comma-joined days column becomes text[]
// and clock columns stored as strings become time.
func Migrate(db *gorm.DB, log *slog.Logger) error {
	if err := normalizeLegacyColumns(db, log); err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	log.Info("migrations applied")
	return nil
}

type legacyColumn struct {
	model  interface{}
	table  string
	column string
	using  string
	toType string
}

var legacyColumns = []legacyColumn{
	{&models.Doctor{}, "doctor", "days", "string_to_array(days, ',')", "text[]"},
	{&models.Doctor{}, "doctor", "report_time", "report_time::time", "time"},
	{&models.Doctor{}, "doctor", "leave_time", "leave_time::time", "time"},
	{&models.Appointment{}, "appointment", "time", `"time"::time`, "time"},
}

func normalizeLegacyColumns(db *gorm.DB, log *slog.Logger) error {
	m := db.Migrator()
	for _, lc := range legacyColumns {
		if !m.HasTable(lc.model) {
			continue
		}
		types, err := m.ColumnTypes(lc.model)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", lc.table, err)
		}
		for _, ct := range types {
			if ct.Name() != lc.column || !isStringType(ct.DatabaseTypeName()) {
				continue
			}
			stmt := fmt.Sprintf(`ALTER TABLE %q ALTER COLUMN %q TYPE %s USING %s`, lc.table, lc.column, lc.toType, lc.using)
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("convert %s.%s: %w", lc.table, lc.column, err)
			}
			log.Info("converted legacy column", "table", lc.table, "column", lc.column, "type", lc.toType)
		}
	}
	return nil
}

func isStringType(name string) bool {
	switch strings.ToLower(name) {
	case "varchar", "character varying", "text", "bpchar", "character":
		return true
	}
	return false
}
