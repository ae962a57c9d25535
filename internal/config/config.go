// Package config loads the corotick YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DemoConfig controls the demonstration run.
type DemoConfig struct {
	Ticks    int           `yaml:"ticks"`
	Interval time.Duration `yaml:"interval"`
}

// StressConfig controls the stress run.
type StressConfig struct {
	Routines  int           `yaml:"routines"`
	Duration  time.Duration `yaml:"duration"`
	MaxFrames int           `yaml:"max_frames"`
	Seed      int64         `yaml:"seed"`
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config models corotick.yaml.
type Config struct {
	Demo   DemoConfig   `yaml:"demo"`
	Stress StressConfig `yaml:"stress"`
	Log    LogConfig    `yaml:"log"`
}

// Default returns the configuration used when no file is given: a 20
// frame demo at 100ms per frame.
func Default() Config {
	return Config{
		Demo: DemoConfig{
			Ticks:    20,
			Interval: 100 * time.Millisecond,
		},
		Stress: StressConfig{
			Routines:  10000,
			Duration:  10 * time.Second,
			MaxFrames: 8,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the file at path over the defaults. Fields missing from the
// file keep their default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Demo.Ticks < 0 {
		errs = append(errs, fmt.Errorf("demo.ticks must not be negative, got %d", c.Demo.Ticks))
	}
	if c.Demo.Interval < 0 {
		errs = append(errs, fmt.Errorf("demo.interval must not be negative, got %s", c.Demo.Interval))
	}
	if c.Stress.Routines <= 0 {
		errs = append(errs, fmt.Errorf("stress.routines must be positive, got %d", c.Stress.Routines))
	}
	if c.Stress.Duration <= 0 {
		errs = append(errs, fmt.Errorf("stress.duration must be positive, got %s", c.Stress.Duration))
	}
	if c.Stress.MaxFrames <= 0 {
		errs = append(errs, fmt.Errorf("stress.max_frames must be positive, got %d", c.Stress.MaxFrames))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
