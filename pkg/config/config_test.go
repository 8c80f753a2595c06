package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DRAGOUT_DRAG_THRESHOLD",
		"DRAGOUT_ARM_TIMEOUT",
		"DRAGOUT_EVENT_SOURCE",
		"DRAGOUT_LOG_DIR",
		"DRAGOUT_FILE_LOGGING",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.EventSource != EventSourceLocal {
		t.Errorf("Expected local event source, got %q", cfg.EventSource)
	}
	if cfg.DragThreshold != 0 {
		t.Errorf("Expected platform threshold (0), got %v", cfg.DragThreshold)
	}
	d, err := cfg.ArmTimeoutDuration()
	if err != nil || d != 5*time.Second {
		t.Errorf("Expected 5s arm timeout, got %v (%v)", d, err)
	}
	if !cfg.FileLogging {
		t.Error("Expected file logging enabled by default")
	}
}

func TestTOMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	data := `
drag_threshold = 6.5
arm_timeout = "0"
event_source = "global"
log_dir = "/tmp/dragout-logs"
file_logging = false
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.DragThreshold != 6.5 {
		t.Errorf("Expected threshold 6.5, got %v", cfg.DragThreshold)
	}
	if d, _ := cfg.ArmTimeoutDuration(); d != 0 {
		t.Errorf("Expected disabled arm timeout, got %v", d)
	}
	if cfg.EventSource != EventSourceGlobal {
		t.Errorf("Expected global event source, got %q", cfg.EventSource)
	}
	if cfg.LogDir != "/tmp/dragout-logs" || cfg.FileLogging {
		t.Errorf("Unexpected logging config: dir=%q enabled=%v", cfg.LogDir, cfg.FileLogging)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`drag_threshold = 6.5`), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("DRAGOUT_DRAG_THRESHOLD", "9")
	t.Setenv("DRAGOUT_ARM_TIMEOUT", "250ms")

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.DragThreshold != 9 {
		t.Errorf("Expected env threshold 9, got %v", cfg.DragThreshold)
	}
	if d, _ := cfg.ArmTimeoutDuration(); d != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", d)
	}
}

func TestDotenvFile(t *testing.T) {
	clearEnv(t)
	// godotenv.Load never overrides variables that are already set, and
	// clearEnv sets them to "". Unset the one under test.
	os.Unsetenv("DRAGOUT_EVENT_SOURCE")
	t.Cleanup(func() { os.Unsetenv("DRAGOUT_EVENT_SOURCE") })

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DRAGOUT_EVENT_SOURCE=global\n"), 0600); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.EventSource != EventSourceGlobal {
		t.Errorf("Expected event source from .env, got %q", cfg.EventSource)
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad threshold", map[string]string{"DRAGOUT_DRAG_THRESHOLD": "far"}},
		{"negative threshold", map[string]string{"DRAGOUT_DRAG_THRESHOLD": "-1"}},
		{"bad timeout", map[string]string{"DRAGOUT_ARM_TIMEOUT": "soon"}},
		{"negative timeout", map[string]string{"DRAGOUT_ARM_TIMEOUT": "-1s"}},
		{"bad source", map[string]string{"DRAGOUT_EVENT_SOURCE": "telepathy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadFrom(t.TempDir()); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
