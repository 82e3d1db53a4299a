package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

func MigrateContactSubmissionsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating contact_submissions table...")
	if err := db.AutoMigrate(&models.ContactSubmission{}); err != nil {
		configslog.Log.Error("Failed to migrate contact_submissions table", zap.Error(err))
		return err
	}
	return nil
}
