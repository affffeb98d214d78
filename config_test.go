// ABOUTME: Tests for preference file loading, saving, and watching.
// ABOUTME: Covers frame round-trips, defaults, and external change pickup.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")

	cfg := &Config{
		Frame: FormatFrame(Frame{X: 120, Y: 80, W: 240, H: 96}),
		Chime: true,
	}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Frame != cfg.Frame {
		t.Errorf("Frame mismatch: got %q, want %q", loaded.Frame, cfg.Frame)
	}
	if !loaded.Chime {
		t.Error("Chime flag lost in round trip")
	}
}

func TestConfigFrameRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")

	moved := Frame{X: 640, Y: 360, W: 280, H: 150}
	cfg := &Config{Frame: FormatFrame(moved)}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A fresh load (as on restart) reproduces the same rectangle.
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	restored, err := ParseFrame(loaded.Frame)
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}
	if restored != moved {
		t.Errorf("restored frame = %+v, want %+v", restored, moved)
	}
}

func TestConfigLoadNonexistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	_, err := LoadConfig(path)
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected os.IsNotExist error, got %v", err)
	}
}

func TestConfigSaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "prefs.json")

	cfg := &Config{Frame: FormatFrame(defaultFrame)}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("prefs file not created: %v", err)
	}
}

func TestRestoreFrameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"empty frame", &Config{}},
		{"malformed frame", &Config{Frame: "{{80, 80}, {280, 150}}"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.cfg.RestoreFrame()
			if f.W != defaultFrame.W || f.H != defaultFrame.H {
				t.Errorf("RestoreFrame() = %+v, want default size %dx%d", f, defaultFrame.W, defaultFrame.H)
			}
		})
	}
}

func TestRestoreFrameValid(t *testing.T) {
	stored := Frame{X: 100, Y: 100, W: 320, H: 180}
	cfg := &Config{Frame: FormatFrame(stored)}

	f := cfg.RestoreFrame()
	if f.W != stored.W || f.H != stored.H {
		t.Errorf("RestoreFrame() size = %dx%d, want %dx%d", f.W, f.H, stored.W, stored.H)
	}
}

func TestWatchConfigSeesExternalWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")

	changes := make(chan *Config, 1)
	watcher, err := WatchConfig(path, func(c *Config) {
		select {
		case changes <- c:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchConfig failed: %v", err)
	}
	defer watcher.Close()

	want := &Config{Frame: "240x96+10+20", Chime: true}
	if err := want.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	select {
	case got := <-changes:
		if got.Frame != want.Frame {
			t.Errorf("watched Frame = %q, want %q", got.Frame, want.Frame)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never delivered the change")
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if path == "" {
		t.Error("ConfigPath returned empty string")
	}
	if filepath.Base(path) != "prefs.json" {
		t.Errorf("expected prefs.json, got %s", filepath.Base(path))
	}
}
