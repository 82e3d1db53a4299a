package configs

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"qatardigital.app/configs/configslog"
)

// Config holds everything the process reads from the environment.
type Config struct {
	AppEnv        string
	Port          int
	DatabaseURL   string
	AdminPassword string
	SessionSecret string
}

const defaultSessionSecret = "qatar-digital-dev-session-secret"

var appConfig *Config

// LoadConfig reads .env (when present) and the process environment.
// ADMIN_PASSWORD is mandatory outside development: the admin area is
// unusable without it and a silent default would be a backdoor.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "5000"))
	if err != nil {
		configslog.SLog.Warnf("Invalid PORT value %q, falling back to 5000", os.Getenv("PORT"))
		port = 5000
	}
	cfg.Port = port

	if cfg.AdminPassword == "" {
		if cfg.AppEnv == "development" {
			configslog.SLog.Warn("ADMIN_PASSWORD not set, admin login is disabled for this run")
		} else {
			configslog.Log.Fatal("ADMIN_PASSWORD environment variable must be set outside development")
		}
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = defaultSessionSecret
		configslog.SLog.Warn("SESSION_SECRET not set, using the built-in default cookie key")
	}

	appConfig = cfg
	return cfg
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if appConfig == nil {
		return LoadConfig()
	}
	return appConfig
}

// SetConfig replaces the process configuration. Intended for tests.
func SetConfig(cfg *Config) {
	appConfig = cfg
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
