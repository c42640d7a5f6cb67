package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// DBPath is the filesystem path of the sqlite store.
	DBPath string
	// ExportDir is the directory the export files are written to.
	ExportDir string
	// OperatingYear is the calendar year appointments may be scheduled in.
	OperatingYear int
	LogLevel      string
}

// Load reads configuration from environment variables, with an optional
// .env file in the working directory.
func Load() (*Config, error) {
	// Missing .env is fine, the defaults below cover everything.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("CLINIC_DB_PATH", "clinic.db")
	v.SetDefault("CLINIC_EXPORT_DIR", "out")
	v.SetDefault("CLINIC_OPERATING_YEAR", 2025)
	v.SetDefault("CLINIC_LOG_LEVEL", "info")

	v.BindEnv("CLINIC_DB_PATH")
	v.BindEnv("CLINIC_EXPORT_DIR")
	v.BindEnv("CLINIC_OPERATING_YEAR")
	v.BindEnv("CLINIC_LOG_LEVEL")

	cfg := &Config{
		DBPath:        v.GetString("CLINIC_DB_PATH"),
		ExportDir:     v.GetString("CLINIC_EXPORT_DIR"),
		OperatingYear: v.GetInt("CLINIC_OPERATING_YEAR"),
		LogLevel:      v.GetString("CLINIC_LOG_LEVEL"),
	}

	if cfg.DBPath == "" {
		return nil, fmt.Errorf("CLINIC_DB_PATH must not be empty")
	}
	if cfg.OperatingYear < 1 {
		return nil, fmt.Errorf("invalid CLINIC_OPERATING_YEAR: %d", cfg.OperatingYear)
	}

	return cfg, nil
}
