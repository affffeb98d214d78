// ABOUTME: Clock string formatting and font size math for the clock face.
// ABOUTME: Pure functions of a time value and the shared font scale.

package main

import (
	"math"
	"strings"
	"time"
)

const (
	// Base font sizes in pixels at scale 1.0.
	baseDateSize = 30
	baseTimeSize = 90

	minFontScale     = 0.5
	maxFontScale     = 2.0
	defaultFontScale = 1.0
)

// FormatClockDate renders the date line, e.g. "MONDAY 05 JAN".
func FormatClockDate(t time.Time) string {
	return strings.ToUpper(t.Format("Monday 02 Jan"))
}

// FormatClockTime renders the time line in 24-hour form, e.g. "14:37".
func FormatClockTime(t time.Time) string {
	return t.Format("15:04")
}

// DateFontSize returns the date line's size in pixels for a font scale.
func DateFontSize(scale float64) float64 {
	return baseDateSize * scale
}

// TimeFontSize returns the time line's size in pixels for a font scale.
func TimeFontSize(scale float64) float64 {
	return baseTimeSize * scale
}

// fontPixels rounds a scaled size to the whole pixel size the rasterizer
// uses. Never returns less than 1.
func fontPixels(size float64) int {
	px := int(math.Round(size))
	if px < 1 {
		px = 1
	}
	return px
}

// crossedHour reports whether now is in a later wall-clock hour than prev.
// Used to trigger the hourly chime exactly once per boundary.
func crossedHour(prev, now time.Time) bool {
	if now.Before(prev) {
		return false
	}
	py, pm, pd := prev.Date()
	ny, nm, nd := now.Date()
	if py != ny || pm != nm || pd != nd {
		return true
	}
	return prev.Hour() != now.Hour()
}
