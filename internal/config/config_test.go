package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "playground" {
		t.Errorf("expected Name=playground, got %s", cfg.Name)
	}
	if cfg.Guess.Min != 1 || cfg.Guess.Max != 100 {
		t.Errorf("expected guess range [1,100], got [%d,%d]", cfg.Guess.Min, cfg.Guess.Max)
	}
	if cfg.Guess.Seed != 0 {
		t.Errorf("expected OS seeding by default, got seed %d", cfg.Guess.Seed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("PLAYGROUND_GUESS_MIN", "")
	t.Setenv("PLAYGROUND_GUESS_MAX", "")
	t.Setenv("PLAYGROUND_GUESS_SEED", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "playground.yaml")

	cfg := DefaultConfig()
	cfg.Guess.Max = 10
	cfg.Guess.Seed = 7
	cfg.Logging.Categories = map[string]bool{"game": false}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Guess.Max != 10 {
		t.Errorf("expected Max=10, got %d", loaded.Guess.Max)
	}
	if loaded.Guess.Seed != 7 {
		t.Errorf("expected Seed=7, got %d", loaded.Guess.Seed)
	}
	if loaded.Logging.IsCategoryEnabled("game") {
		t.Error("expected game category to be disabled after reload")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Guess.Max != 100 {
		t.Errorf("expected default Max=100, got %d", cfg.Guess.Max)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("guess: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Guess.Min = 50
	cfg.Guess.Max = 10
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for inverted range")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown log level")
	}

	cfg = DefaultConfig()
	cfg.UX.Theme = "neon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown theme")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.WarnLevel},
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetSandboxTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sandbox.Timeout = "250ms"
	if got := cfg.GetSandboxTimeout().Milliseconds(); got != 250 {
		t.Errorf("expected 250ms, got %dms", got)
	}
	cfg.Sandbox.Timeout = "soon"
	if got := cfg.GetSandboxTimeout().Seconds(); got != 5 {
		t.Errorf("expected fallback of 5s, got %vs", got)
	}
}
