package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

func MigrateServicesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating services table...")
	if err := db.AutoMigrate(&models.Service{}); err != nil {
		configslog.Log.Error("Failed to migrate services table", zap.Error(err))
		return err
	}
	return nil
}
