package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "clinic.db" {
		t.Errorf("DBPath = %q, want clinic.db", cfg.DBPath)
	}
	if cfg.ExportDir != "out" {
		t.Errorf("ExportDir = %q, want out", cfg.ExportDir)
	}
	if cfg.OperatingYear != 2025 {
		t.Errorf("OperatingYear = %d, want 2025", cfg.OperatingYear)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CLINIC_DB_PATH", "/tmp/other.db")
	t.Setenv("CLINIC_OPERATING_YEAR", "2031")
	t.Setenv("CLINIC_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.OperatingYear != 2031 {
		t.Errorf("OperatingYear = %d", cfg.OperatingYear)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadRejectsBadYear(t *testing.T) {
	t.Setenv("CLINIC_OPERATING_YEAR", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for operating year 0")
	}
}
