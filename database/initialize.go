package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/database/migrations"
	"qatardigital.app/database/seeders"
)

// Initialize runs migrations and the empty-table seeders. It is called once
// from process bootstrap, never from request handling.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if migrate {
		if err := RunMigrationsInOrder(db); err != nil {
			configslog.Log.Error("Migration step failed", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Migrations completed.")
	}

	if seed {
		if err := RunSeeders(db); err != nil {
			configslog.Log.Error("Seeding step failed", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Seeders completed.")
	}

	return nil
}

// RunMigrationsInOrder migrates table groups in dependency order; careers
// must exist before job applications reference them.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		migrations.MigrateContactSubmissionsTable,
		migrations.MigratePortfolioProjectsTable,
		migrations.MigrateServicesTable,
		migrations.MigrateTestimonialsTable,
		migrations.MigrateBlogPostsTable,
		migrations.MigrateCareersTables,
		migrations.MigrateAnalyticsTable,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	return nil
}

// RunSeeders populates default content into empty tables. Each seeder skips
// itself entirely when its table already holds rows, so restarts never
// duplicate content.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedBlogPosts(db); err != nil {
		return err
	}
	if err := seeders.SeedCareers(db); err != nil {
		return err
	}
	if err := seeders.SeedServices(db); err != nil {
		return err
	}
	return nil
}
