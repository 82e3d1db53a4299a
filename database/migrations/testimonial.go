package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

func MigrateTestimonialsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating testimonials table...")
	if err := db.AutoMigrate(&models.Testimonial{}); err != nil {
		configslog.Log.Error("Failed to migrate testimonials table", zap.Error(err))
		return err
	}
	return nil
}
