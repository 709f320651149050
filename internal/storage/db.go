// internal/storage/db.go
package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/igormatos02/timecontrolapi/internal/models"
)

// OpenDB connects to postgres and runs schema migration.
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity, including the
// employee_teams join table implied by the many2many relation.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Team{},
		&models.Employee{},
		&models.Project{},
		&models.Attendance{},
		&models.Report{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
