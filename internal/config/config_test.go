package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maxgreen/daykeep/internal/constants"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.DataPath != constants.DefaultDataPath {
			t.Errorf("DataPath = %q, want default %q", cfg.DataPath, constants.DefaultDataPath)
		}
		if cfg.Debug {
			t.Error("Debug = true, want false by default")
		}
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := "data_path = \"/tmp/keep.db\"\ntimezone = \"America/New_York\"\ndebug = true\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.DataPath != "/tmp/keep.db" {
			t.Errorf("DataPath = %q, want /tmp/keep.db", cfg.DataPath)
		}
		if cfg.Timezone != "America/New_York" {
			t.Errorf("Timezone = %q, want America/New_York", cfg.Timezone)
		}
		if !cfg.Debug {
			t.Error("Debug = false, want true")
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("data_path = [broken"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load(malformed) = nil error, want parse error")
		}
	})
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	got, err := ExpandHome("~/x/y.json")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "x", "y.json") {
		t.Errorf("ExpandHome() = %q", got)
	}

	got, _ = ExpandHome("/abs/path.json")
	if got != "/abs/path.json" {
		t.Errorf("ExpandHome(abs) = %q, want unchanged", got)
	}
}
