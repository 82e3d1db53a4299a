package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

func MigrateAnalyticsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating analytics table...")
	if err := db.AutoMigrate(&models.Analytics{}); err != nil {
		configslog.Log.Error("Failed to migrate analytics table", zap.Error(err))
		return err
	}
	return nil
}
