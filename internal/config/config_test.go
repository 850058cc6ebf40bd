package config

import "testing"

// No config.yml exists in the test working directory, so Load falls
// back to the built-in defaults.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 8480 {
		t.Errorf("Port = %d, want 8480", cfg.Port)
	}
	if cfg.ScanInterval != 60 {
		t.Errorf("ScanInterval = %d, want 60", cfg.ScanInterval)
	}
	if cfg.Database.Path != "./shelftag.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Library.Path != "./music" {
		t.Errorf("Library.Path = %q", cfg.Library.Path)
	}
	if cfg.Library.DefaultShelf != "Standard" {
		t.Errorf("Library.DefaultShelf = %q", cfg.Library.DefaultShelf)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SHELFTAG_LIBRARY_DEFAULT_SHELF", "Incoming")
	t.Setenv("SHELFTAG_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Library.DefaultShelf != "Incoming" {
		t.Errorf("Library.DefaultShelf = %q, want env override", cfg.Library.DefaultShelf)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want env override 9000", cfg.Port)
	}
}
