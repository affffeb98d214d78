package main

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	faceMarginX = 24
	faceMarginY = 16
	faceLineGap = 8
)

// FacePalette holds the clock face colors for the active system theme.
type FacePalette struct {
	Card Color
	Date Color
	Time Color
}

func facePalette() FacePalette {
	if isDarkMode() {
		return FacePalette{
			Card: Color{R: 0.08, G: 0.08, B: 0.1, A: 0.35},
			Date: Color{R: 0.85, G: 0.85, B: 0.88, A: 1},
			Time: Color{R: 1, G: 1, B: 1, A: 1},
		}
	}
	return FacePalette{
		Card: Color{R: 0.96, G: 0.96, B: 0.96, A: 0.35},
		Date: Color{R: 0.25, G: 0.25, B: 0.28, A: 1},
		Time: Color{R: 0.1, G: 0.1, B: 0.12, A: 1},
	}
}

// ClockFace renders the current date and time onto the clock window and
// makes the window draggable by background click-drag.
type ClockFace struct {
	renderer *Renderer
	window   *glfw.Window
	settings *Settings

	// Drag state
	dragging bool
	grabX    int
	grabY    int
}

// NewClockFace creates the clock face and wires its window callbacks.
// onMoved is invoked with the new frame on every window move.
func NewClockFace(renderer *Renderer, window *glfw.Window, settings *Settings, onMoved func(Frame)) *ClockFace {
	cf := &ClockFace{
		renderer: renderer,
		window:   window,
		settings: settings,
	}

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			if cf.settings.Frozen() {
				return
			}
			cx, cy := w.GetCursorPos()
			cf.dragging = true
			cf.grabX = int(cx)
			cf.grabY = int(cy)
		case glfw.Release:
			cf.dragging = false
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !cf.dragging {
			return
		}
		wx, wy := w.GetPos()
		w.SetPos(wx+int(xpos)-cf.grabX, wy+int(ypos)-cf.grabY)
	})

	// Every move persists the frame, dragged or programmatic
	window.SetPosCallback(func(w *glfw.Window, x, y int) {
		if onMoved == nil {
			return
		}
		width, height := w.GetSize()
		onMoved(Frame{X: x, Y: y, W: width, H: height})
	})

	return cf
}

// ApplyFrozen raises or lowers the window and enables or disables drag.
// Frozen drops the always-on-top level to normal stacking; unfrozen
// restores floating.
func (cf *ClockFace) ApplyFrozen(frozen bool) {
	if frozen {
		cf.dragging = false
		cf.window.SetAttrib(glfw.Floating, glfw.False)
	} else {
		cf.window.SetAttrib(glfw.Floating, glfw.True)
	}
}

// Render draws the two clock strings centered, resizing the window to fit
// the current font scale.
func (cf *ClockFace) Render() error {
	scale := cf.settings.FontScale()
	now := time.Now()

	dateStr := FormatClockDate(now)
	timeStr := FormatClockTime(now)

	dateSize := fontPixels(DateFontSize(scale))
	timeSize := fontPixels(TimeFontSize(scale))

	dateAtlas, err := cf.renderer.Atlas(dateSize)
	if err != nil {
		return err
	}
	timeAtlas, err := cf.renderer.Atlas(timeSize)
	if err != nil {
		return err
	}

	dateW, dateH := dateAtlas.MeasureText(dateStr)
	timeW, timeH := timeAtlas.MeasureText(timeStr)

	// Fit the window to its content
	desiredW := 2*faceMarginX + max(dateW, timeW)
	desiredH := 2*faceMarginY + dateH + faceLineGap + timeH
	curW, curH := cf.window.GetSize()
	if desiredW != curW || desiredH != curH {
		cf.window.SetSize(desiredW, desiredH)
	}

	pal := facePalette()
	w := float32(desiredW)

	cf.renderer.DrawRect(0, 0, w, float32(desiredH), pal.Card)

	dateY := float32(faceMarginY)
	cf.renderer.DrawTextCentered(0, w, dateY, dateStr, dateSize, pal.Date)

	timeY := dateY + float32(dateH) + faceLineGap
	cf.renderer.DrawTextCentered(0, w, timeY, timeStr, timeSize, pal.Time)

	return nil
}
