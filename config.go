// ABOUTME: Preference file handling for state that survives restarts.
// ABOUTME: Stores the window frame string and the hourly chime flag.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Config holds the persisted preferences. Everything else (font scale,
// frozen) is session-only.
type Config struct {
	Frame string `json:"frame,omitempty"`
	Chime bool   `json:"chime,omitempty"`
}

// ConfigPath returns the platform-appropriate path for the prefs file.
func ConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "SimpleDeskClock", "prefs.json")
}

// LoadConfig reads the preferences from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the preferences to the given path, creating directories as needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// RestoreFrame parses the stored frame string. An absent or malformed value
// silently falls back to the default rectangle; either way the result is
// clamped onto the visible display.
func (c *Config) RestoreFrame() Frame {
	if c == nil || c.Frame == "" {
		return ClampToDisplay(defaultFrame)
	}
	f, err := ParseFrame(c.Frame)
	if err != nil {
		return ClampToDisplay(defaultFrame)
	}
	return ClampToDisplay(f)
}

// WatchConfig watches the prefs file and delivers freshly loaded preferences
// whenever something else writes it, mirroring how a platform defaults store
// propagates external changes. The caller closes the returned watcher.
func WatchConfig(path string, onChange func(*Config)) (*fsnotify.Watcher, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors and atomic saves replace the file, which
	// would silently drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadConfig(path)
				if err != nil {
					// Partial write or removal; the next event retries.
					continue
				}
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("prefs watcher error")
			}
		}
	}()

	return watcher, nil
}
