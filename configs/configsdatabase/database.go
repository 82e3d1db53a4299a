package configsdatabase

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"qatardigital.app/configs"
	"qatardigital.app/configs/configslog"
)

var db *gorm.DB

// InitDB opens the Postgres connection pool from DATABASE_URL.
func InitDB() {
	cfg := configs.GetConfig()
	if cfg.DatabaseURL == "" {
		configslog.Log.Fatal("DATABASE_URL environment variable must be set")
	}

	logLevel := gormlogger.Warn
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}

	conn, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		configslog.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Failed to access underlying sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	configslog.SLog.Info("Database connection established")
}

// GetDB returns the shared *gorm.DB. InitDB (or SetDB in tests) must run first.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("Database accessed before InitDB")
	}
	return db
}

// SetDB swaps the shared handle. Tests use this with an in-memory store.
func SetDB(conn *gorm.DB) {
	db = conn
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Failed to access sql.DB for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Failed to close database connection", zap.Error(err))
	}
}
