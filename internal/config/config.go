// Package config loads txnview settings from viper (config file, env, flags).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeySourceDelay     = "source.delay"
	KeySourceFixture   = "source.fixture"
	KeySimulateFailure = "source.simulate_failure"
	KeyPageSize        = "view.page_size"
	KeyClampOnFilter   = "view.clamp_on_filter"
	KeyTheme           = "view.theme"
	KeyStart           = "view.start"
	KeyEnd             = "view.end"
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyLogFile         = "logging.file"
)

// Config holds every setting the commands read.
type Config struct {
	FixturePath     string
	Theme           string
	Start           string
	End             string
	LogLevel        string
	LogFormat       string
	LogFile         string
	Delay           time.Duration
	PageSize        int
	SimulateFailure bool
	ClampOnFilter   bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySourceDelay, 500*time.Millisecond)
	v.SetDefault(KeySourceFixture, "")
	v.SetDefault(KeySimulateFailure, false)
	v.SetDefault(KeyPageSize, 5)
	v.SetDefault(KeyClampOnFilter, true)
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyStart, "")
	v.SetDefault(KeyEnd, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Delay:           v.GetDuration(KeySourceDelay),
		FixturePath:     ExpandPath(v.GetString(KeySourceFixture)),
		SimulateFailure: v.GetBool(KeySimulateFailure),
		PageSize:        v.GetInt(KeyPageSize),
		ClampOnFilter:   v.GetBool(KeyClampOnFilter),
		Theme:           v.GetString(KeyTheme),
		Start:           v.GetString(KeyStart),
		End:             v.GetString(KeyEnd),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		LogFile:         ExpandPath(v.GetString(KeyLogFile)),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", common.ErrInvalidConfig, KeyPageSize, c.PageSize)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %s", common.ErrInvalidConfig, KeySourceDelay, c.Delay)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %s must be console or json, got %q", common.ErrInvalidConfig, KeyLogFormat, c.LogFormat)
	}
	return nil
}

// ExpandPath expands a leading ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// DefaultDir returns the directory searched for config.yaml.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "txnview"), nil
}

// EnvKeyReplacer maps nested keys to env names (view.page_size -> VIEW_PAGE_SIZE).
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}
