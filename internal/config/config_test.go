package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corotick.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
demo:
  ticks: 40
  interval: 16ms
log:
  level: debug
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 40, cfg.Demo.Ticks)
	assert.Equal(t, 16*time.Millisecond, cfg.Demo.Interval)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, Default().Stress, cfg.Stress)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "demo: [unclosed")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadInvalid(t *testing.T) {
	path := writeConfig(t, `
stress:
  routines: 0
log:
  format: xml
`)

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stress.routines")
	assert.Contains(t, err.Error(), "log.format")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Demo.Ticks = -1
	cfg.Stress.Duration = 0
	cfg.Stress.MaxFrames = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "demo.ticks")
	assert.Contains(t, err.Error(), "stress.duration")
	assert.Contains(t, err.Error(), "stress.max_frames")
}
