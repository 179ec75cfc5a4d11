// Package settings provides the device settings the watch face reads on every tick.
package settings

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings exposes the device-level clock preferences.
type Settings interface {
	Is24Hour() bool
}

// Static is a fixed setting.
type Static bool

func (s Static) Is24Hour() bool { return bool(s) }

// Config is the on-disk settings document.
type Config struct {
	Clock24h *bool `yaml:"clock_24h,omitempty"`
	Shape    string `yaml:"shape,omitempty"`
}

// Load reads a settings file. A missing file yields a zero Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// File reads settings from a YAML file, re-reading it when its modification time changes.
//
// Read errors keep the last good value, so a half-written file never flips the clock mode.
type File struct {
	path     string
	fallback bool

	mu      sync.Mutex
	modTime time.Time
	size    int64
	loaded  bool
	is24h   bool
	lastErr error
}

// NewFile returns File settings for path; fallback is used until the file sets clock_24h.
func NewFile(path string, fallback bool) *File {
	return &File{path: path, fallback: fallback, is24h: fallback}
}

// Is24Hour implements Settings.
func (f *File) Is24Hour() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refresh()
	return f.is24h
}

// Err returns the error from the most recent read attempt, if any.
func (f *File) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *File) refresh() {
	st, err := os.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.is24h = f.fallback
			f.loaded = false
			f.lastErr = nil
			return
		}
		f.lastErr = fmt.Errorf("stat %s: %w", f.path, err)
		return
	}
	if f.loaded && st.ModTime().Equal(f.modTime) && st.Size() == f.size {
		return
	}

	cfg, err := Load(f.path)
	if err != nil {
		f.lastErr = err
		return
	}
	f.modTime = st.ModTime()
	f.size = st.Size()
	f.loaded = true
	f.lastErr = nil
	if cfg.Clock24h != nil {
		f.is24h = *cfg.Clock24h
	} else {
		f.is24h = f.fallback
	}
}
