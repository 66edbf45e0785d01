package config

import (
	"errors"

	"github.com/yoockh/hojadevida/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the profile tables.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("db is nil; call InitPostgres() first")
	}
	return db.AutoMigrate(
		&models.PersonalProfile{},
		&models.WorkExperience{},
		&models.Recognition{},
		&models.CompletedCourse{},
		&models.AcademicProduct{},
		&models.LaborProduct{},
		&models.GarageSaleItem{},
	)
}
