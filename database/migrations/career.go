package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

// Careers and job applications migrate together: the application table
// carries a foreign key into careers.
func MigrateCareersTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating careers & job_applications tables...")
	if err := db.AutoMigrate(&models.Career{}, &models.JobApplication{}); err != nil {
		configslog.Log.Error("Failed to migrate careers & job_applications tables", zap.Error(err))
		return err
	}
	return nil
}
