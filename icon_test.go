// ABOUTME: Tests for the runtime-drawn status icon.
// ABOUTME: Verifies PNG validity, dimensions, and visible glyph pixels.

package main

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestTrayIconIsValidPNG(t *testing.T) {
	data, err := TrayIcon()
	if err != nil {
		t.Fatalf("TrayIcon failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("icon is not a valid PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != trayIconSize || bounds.Dy() != trayIconSize {
		t.Errorf("icon size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), trayIconSize, trayIconSize)
	}
}

func TestTrayIconHasGlyphPixels(t *testing.T) {
	data, err := TrayIcon()
	if err != nil {
		t.Fatalf("TrayIcon failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	opaque := 0
	transparent := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a > 0x8000 {
				opaque++
			} else if a == 0 {
				transparent++
			}
		}
	}

	// The ring and hands must be drawn, and the background must stay clear
	// so the tray can template-tint the glyph.
	if opaque == 0 {
		t.Error("icon has no opaque glyph pixels")
	}
	if transparent == 0 {
		t.Error("icon has no transparent background pixels")
	}
}

func TestDrawClockGlyphCenterDot(t *testing.T) {
	img := drawClockGlyph(64)

	_, _, _, a := img.At(32, 32).RGBA()
	if a == 0 {
		t.Error("expected the hand pivot at the center to be drawn")
	}
}

func TestScaleIcon(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	dst := scaleIcon(src, 22, 22)

	bounds := dst.Bounds()
	if bounds.Dx() != 22 || bounds.Dy() != 22 {
		t.Errorf("scaled size = %dx%d, want 22x22", bounds.Dx(), bounds.Dy())
	}
}
