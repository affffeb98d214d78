// ABOUTME: Window frame value type with textual serialization.
// ABOUTME: Parses and formats "WxH+X+Y" geometry strings for persistence.

package main

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// Frame is a window rectangle in screen coordinates.
type Frame struct {
	X int
	Y int
	W int
	H int
}

// defaultFrame is used when no frame was persisted or the stored string is
// malformed. The clock refits its size to the rendered text on first draw.
var defaultFrame = Frame{X: 80, Y: 80, W: 280, H: 150}

// FormatFrame serializes a frame as an X-style geometry string, e.g.
// "280x150+80+80". Offsets keep their sign: "280x150-5-10".
func FormatFrame(f Frame) string {
	return fmt.Sprintf("%dx%d%+d%+d", f.W, f.H, f.X, f.Y)
}

// ParseFrame parses a geometry string produced by FormatFrame.
func ParseFrame(s string) (Frame, error) {
	var f Frame
	n, err := fmt.Sscanf(s, "%dx%d%d%d", &f.W, &f.H, &f.X, &f.Y)
	if err != nil {
		return Frame{}, fmt.Errorf("parse frame %q: %w", s, err)
	}
	if n != 4 {
		return Frame{}, fmt.Errorf("parse frame %q: got %d of 4 fields", s, n)
	}
	if f.W <= 0 || f.H <= 0 {
		return Frame{}, fmt.Errorf("parse frame %q: non-positive size", s)
	}
	return f, nil
}

// clampFrame nudges a frame so at least part of it stays inside bounds.
// Sizes are never changed, only the origin.
func clampFrame(f Frame, bounds image.Rectangle) Frame {
	const edge = 24 // minimum visible strip in pixels

	if f.X > bounds.Max.X-edge {
		f.X = bounds.Max.X - edge
	}
	if f.X+f.W < bounds.Min.X+edge {
		f.X = bounds.Min.X + edge - f.W
	}
	if f.Y > bounds.Max.Y-edge {
		f.Y = bounds.Max.Y - edge
	}
	if f.Y < bounds.Min.Y {
		f.Y = bounds.Min.Y
	}
	return f
}

// ClampToDisplay keeps a restored frame reachable on the primary display.
// With no display information the frame is returned as-is.
func ClampToDisplay(f Frame) Frame {
	if screenshot.NumActiveDisplays() == 0 {
		return f
	}
	return clampFrame(f, screenshot.GetDisplayBounds(0))
}
