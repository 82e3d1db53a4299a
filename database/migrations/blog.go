package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

func MigrateBlogPostsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating blog_posts table...")
	if err := db.AutoMigrate(&models.BlogPost{}); err != nil {
		configslog.Log.Error("Failed to migrate blog_posts table", zap.Error(err))
		return err
	}
	return nil
}
