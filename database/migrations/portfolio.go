package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

func MigratePortfolioProjectsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating portfolio_projects table...")
	if err := db.AutoMigrate(&models.PortfolioProject{}); err != nil {
		configslog.Log.Error("Failed to migrate portfolio_projects table", zap.Error(err))
		return err
	}
	return nil
}
