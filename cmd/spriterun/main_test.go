package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sprite-run/internal/config"
)

// isolate points the config search path at empty directories and restores
// the global flags afterwards.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	saved := [...]string{flagConfig, flagDifficulty}
	t.Cleanup(func() {
		flagConfig, flagDifficulty = saved[0], saved[1]
	})
}

func TestLoadSettingsAppliesPreset(t *testing.T) {
	isolate(t)
	flagConfig = ""
	flagDifficulty = "fixed"

	cfg, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() failed: %v", err)
	}
	if cfg.Speed.Max != cfg.Speed.Base || cfg.Speed.Increase != 0 {
		t.Errorf("fixed preset not applied: %+v", cfg.Speed)
	}
}

func TestLoadSettingsRejectsUnknownPreset(t *testing.T) {
	isolate(t)
	flagConfig = ""
	flagDifficulty = "nightmare"

	if _, err := loadSettings(); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestConfigCommandPrintsLoadableYAML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(custom, []byte("speed:\n  base: 7\n  max: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--config", custom, "--difficulty", ""})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	printed := filepath.Join(dir, "printed.yaml")
	if err := os.WriteFile(printed, out.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(printed)
	if err != nil {
		t.Fatalf("printed config does not load: %v\n%s", err, out.String())
	}
	if cfg.Speed.Base != 7 || cfg.Speed.Max != 20 {
		t.Errorf("speed = %+v, expected base 7 max 20", cfg.Speed)
	}
	if cfg.Physics != config.DefaultSettings().Physics {
		t.Errorf("physics = %+v, expected defaults", cfg.Physics)
	}
}
