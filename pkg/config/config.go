package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	EventSourceLocal  = "local"  // AppKit local monitor, window-scoped
	EventSourceGlobal = "global" // system-wide gohook tap
)

type Config struct {
	// DragThreshold in points; 0 means the platform default.
	DragThreshold float64 `toml:"drag_threshold"`
	// ArmTimeout like "5s"; "0" disables arm expiry.
	ArmTimeout  string `toml:"arm_timeout"`
	EventSource string `toml:"event_source"` // "local" or "global"

	LogDir      string `toml:"log_dir"`
	FileLogging bool   `toml:"file_logging"`
}

// Dir returns the per-user config directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dragout"), nil
}

func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		dir = ""
	}
	return LoadFrom(dir)
}

// LoadFrom reads dir/.env and dir/config.toml (both optional) over the
// defaults, then applies DRAGOUT_* environment overrides.
func LoadFrom(dir string) (*Config, error) {
	cfg := &Config{
		ArmTimeout:  "5s",
		EventSource: EventSourceLocal,
		FileLogging: true,
	}

	if dir != "" {
		// .env only fills variables the environment doesn't already set.
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
			}
		}

		configPath := filepath.Join(dir, "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			if _, err := toml.DecodeFile(configPath, cfg); err != nil {
				return nil, err
			}
		}
	}

	// Apply environment variable overrides
	if v := os.Getenv("DRAGOUT_DRAG_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DRAGOUT_DRAG_THRESHOLD %q: %w", v, err)
		}
		cfg.DragThreshold = f
	}
	if v := os.Getenv("DRAGOUT_ARM_TIMEOUT"); v != "" {
		cfg.ArmTimeout = v
	}
	if v := os.Getenv("DRAGOUT_EVENT_SOURCE"); v != "" {
		cfg.EventSource = strings.ToLower(v)
	}
	if v := os.Getenv("DRAGOUT_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("DRAGOUT_FILE_LOGGING"); v != "" {
		cfg.FileLogging = strings.ToLower(v) == "true" || v == "1"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DragThreshold < 0 {
		return fmt.Errorf("drag_threshold must not be negative, got %v", c.DragThreshold)
	}
	if _, err := c.ArmTimeoutDuration(); err != nil {
		return err
	}
	switch c.EventSource {
	case EventSourceLocal, EventSourceGlobal:
	default:
		return fmt.Errorf("unknown event_source %q (want %q or %q)", c.EventSource, EventSourceLocal, EventSourceGlobal)
	}
	return nil
}

// ArmTimeoutDuration parses ArmTimeout. An empty value or "0" disables it.
func (c *Config) ArmTimeoutDuration() (time.Duration, error) {
	if c.ArmTimeout == "" || c.ArmTimeout == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ArmTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid arm_timeout %q: %w", c.ArmTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("arm_timeout must not be negative, got %v", d)
	}
	return d, nil
}
