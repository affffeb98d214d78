// ABOUTME: Tests for frame geometry serialization and clamping.
// ABOUTME: Verifies format/parse round-trips and malformed input handling.

package main

import (
	"image"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		f    Frame
		want string
	}{
		{"positive origin", Frame{X: 120, Y: 80, W: 240, H: 96}, "240x96+120+80"},
		{"origin at zero", Frame{X: 0, Y: 0, W: 280, H: 150}, "280x150+0+0"},
		{"negative origin", Frame{X: -5, Y: -10, W: 300, H: 200}, "300x200-5-10"},
		{"mixed signs", Frame{X: -1200, Y: 40, W: 280, H: 150}, "280x150-1200+40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FormatFrame(tt.f)
			if s != tt.want {
				t.Errorf("FormatFrame() = %q, want %q", s, tt.want)
			}

			got, err := ParseFrame(s)
			if err != nil {
				t.Fatalf("ParseFrame(%q) failed: %v", s, err)
			}
			if got != tt.f {
				t.Errorf("round trip = %+v, want %+v", got, tt.f)
			}
		})
	}
}

func TestParseFrameMalformed(t *testing.T) {
	inputs := []string{
		"",
		"garbage",
		"280x150",
		"280x+80+80",
		"0x150+80+80",
		"280x-150+80+80",
		"{{80, 80}, {280, 150}}",
	}

	for _, in := range inputs {
		if _, err := ParseFrame(in); err == nil {
			t.Errorf("ParseFrame(%q) succeeded, want error", in)
		}
	}
}

func TestClampFrame(t *testing.T) {
	bounds := image.Rect(0, 0, 1920, 1080)

	tests := []struct {
		name string
		in   Frame
		want Frame
	}{
		{"inside untouched", Frame{X: 100, Y: 100, W: 280, H: 150}, Frame{X: 100, Y: 100, W: 280, H: 150}},
		{"off right edge", Frame{X: 3000, Y: 100, W: 280, H: 150}, Frame{X: 1896, Y: 100, W: 280, H: 150}},
		{"off left edge", Frame{X: -1000, Y: 100, W: 280, H: 150}, Frame{X: -256, Y: 100, W: 280, H: 150}},
		{"below bottom", Frame{X: 100, Y: 2000, W: 280, H: 150}, Frame{X: 100, Y: 1056, W: 280, H: 150}},
		{"above top", Frame{X: 100, Y: -50, W: 280, H: 150}, Frame{X: 100, Y: 0, W: 280, H: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampFrame(tt.in, bounds)
			if got != tt.want {
				t.Errorf("clampFrame() = %+v, want %+v", got, tt.want)
			}
			if got.W != tt.in.W || got.H != tt.in.H {
				t.Errorf("clampFrame() changed size: %+v", got)
			}
		})
	}
}
