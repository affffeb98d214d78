// ABOUTME: Runtime-drawn clock glyph for the status icon.
// ABOUTME: Rendered with gg, downscaled, and PNG-encoded for the tray.

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

const (
	trayIconSize = 22
	glyphRender  = 256 // drawn large, scaled down for clean edges
)

// TrayIcon returns the status icon as PNG bytes. The glyph is black on
// transparent so macOS can treat it as a template image.
func TrayIcon() ([]byte, error) {
	glyph := drawClockGlyph(glyphRender)
	return encodeIconPNG(scaleIcon(glyph, trayIconSize, trayIconSize))
}

// drawClockGlyph draws a watch face showing ten past ten.
func drawClockGlyph(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	cx, cy := s/2, s/2
	radius := s * 0.42

	dc.SetRGB(0, 0, 0)
	dc.SetLineCapRound()

	dc.SetLineWidth(s * 0.07)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	hand := func(angleDeg, length, width float64) {
		a := angleDeg * math.Pi / 180
		dc.SetLineWidth(width)
		dc.DrawLine(cx, cy, cx+length*math.Cos(a), cy+length*math.Sin(a))
		dc.Stroke()
	}
	hand(210, radius*0.50, s*0.07) // hour hand at 10
	hand(-30, radius*0.72, s*0.05) // minute hand at 2

	dc.DrawCircle(cx, cy, s*0.05)
	dc.Fill()

	return dc.Image()
}

// scaleIcon resizes an image with Catmull-Rom resampling.
func scaleIcon(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// encodeIconPNG encodes an image as PNG bytes.
func encodeIconPNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("PNG encode: %w", err)
	}
	return buf.Bytes(), nil
}
