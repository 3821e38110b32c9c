package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewManagerMissingDir(t *testing.T) {
	if _, err := NewManager("no-such-directory"); err == nil {
		t.Error("Expected error for missing config directory")
	}
}

func TestManagerLoadAndCache(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "fast.json", `{"name":"fast","description":"short runs","max_turns":50}`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	cfg, err := m.LoadConfig("fast")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "fast" || cfg.MaxTurns != 50 {
		t.Errorf("Loaded config = %+v", cfg)
	}

	// A second load must come from the cache, surviving file removal.
	if err := os.Remove(filepath.Join(dir, "fast.json")); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := m.LoadConfig("fast"); err != nil {
		t.Errorf("Cached load failed: %v", err)
	}
}

func TestManagerLoadErrors(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "broken.json", `{"name":`)
	writeConfig(t, dir, "bad.json", `{"name":"bad","max_turns":0}`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := m.LoadConfig("missing"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
	if _, err := m.LoadConfig("broken"); err == nil {
		t.Error("Expected error for malformed JSON")
	}
	if _, err := m.LoadConfig("bad"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestManagerDefault(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	// With no default.json the built-in profile applies.
	cfg := m.GetDefault()
	if cfg.Name != "default" || cfg.MaxTurns != DefaultMaxTurns {
		t.Errorf("Built-in default = %+v", cfg)
	}

	// A default.json on disk takes precedence.
	dir2 := t.TempDir()
	writeConfig(t, dir2, "default.json", `{"name":"custom","max_turns":123}`)
	m2, err := NewManager(dir2)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if got := m2.GetDefault(); got.Name != "custom" || got.MaxTurns != 123 {
		t.Errorf("Disk default = %+v", got)
	}
}

func TestManagerSetDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "long.json", `{"name":"long","max_turns":9000}`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if err := m.SetDefault("long"); err != nil {
		t.Fatalf("SetDefault failed: %v", err)
	}
	if got := m.GetDefault(); got.Name != "long" {
		t.Errorf("Default after SetDefault = %+v", got)
	}
	if err := m.SetDefault("missing"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestManagerSaveConfig(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	cfg := &Config{Name: "saved", Description: "test profile", MaxTurns: 42}
	if err := m.SaveConfig("saved", cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, err := m.LoadConfig("saved")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.MaxTurns != 42 {
		t.Errorf("Loaded max_turns = %d, want 42", loaded.MaxTurns)
	}

	if err := m.SaveConfig("invalid", &Config{Name: "", MaxTurns: 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestListConfigs(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "a.json", `{"name":"a","description":"first","max_turns":10}`)
	writeConfig(t, dir, "b.json", `{"name":"b","description":"second","max_turns":20}`)
	writeConfig(t, dir, "broken.json", `not json`)
	writeConfig(t, dir, "notes.txt", `ignored`)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	infos, err := m.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("Expected 2 configs, got %d", len(infos))
	}
}

func TestValidateConfig(t *testing.T) {
	if err := Validate(&Config{Name: "ok", MaxTurns: 100}); err != nil {
		t.Errorf("Valid config rejected: %v", err)
	}
	if err := Validate(&Config{Name: "", MaxTurns: 100}); err == nil {
		t.Error("Expected error for missing name")
	}
	if err := Validate(&Config{Name: "x", MaxTurns: MaxTurnCeiling + 1}); err == nil {
		t.Error("Expected error for excessive ceiling")
	}
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}
