// ABOUTME: Reusable UI widgets built on top of the OpenGL renderer.
// ABOUTME: Provides labels, buttons, checkboxes, and sliders.

package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WidgetTheme holds colors for widget rendering.
type WidgetTheme struct {
	Background    Color
	BackgroundHov Color
	Border        Color
	Text          Color
	TextMuted     Color
	Accent        Color
	InputBg       Color
	InputBorder   Color
}

// WidgetState tracks interactive state for widgets.
type WidgetState struct {
	MouseX, MouseY float32
	MouseDown      bool
	PrevMouseDown  bool

	// ActiveID is the widget currently being dragged, if any.
	ActiveID string
}

// NewWidgetState creates a new widget state.
func NewWidgetState() *WidgetState {
	return &WidgetState{}
}

// JustClicked returns true if mouse was just pressed this frame.
func (ws *WidgetState) JustClicked() bool {
	return ws.MouseDown && !ws.PrevMouseDown
}

// JustReleased returns true if mouse was just released this frame.
func (ws *WidgetState) JustReleased() bool {
	return !ws.MouseDown && ws.PrevMouseDown
}

// UpdateMouse updates mouse state from window.
func (ws *WidgetState) UpdateMouse(wnd *glfw.Window) {
	ws.PrevMouseDown = ws.MouseDown
	x, y := wnd.GetCursorPos()
	ws.MouseX = float32(x)
	ws.MouseY = float32(y)
	ws.MouseDown = wnd.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
}

// ButtonWidth calculates the width needed for a button with the given label.
func ButtonWidth(r *Renderer, label string, padding float32) float32 {
	labelW, _ := r.MeasureText(label)
	return float32(labelW) + padding*2
}

// Button draws a clickable button and returns true if clicked.
// Width is auto-calculated from text; pass minW to enforce a minimum width.
func Button(r *Renderer, ws *WidgetState, id string, x, y, minW, h float32, label string, theme WidgetTheme) bool {
	// Calculate width from text with padding
	padding := float32(12)
	labelW, _ := r.MeasureText(label)
	w := float32(labelW) + padding*2
	if w < minW {
		w = minW
	}

	hovered := pointInRect(ws.MouseX, ws.MouseY, x, y, w, h)

	bg := theme.Background
	if hovered {
		bg = theme.BackgroundHov
	}

	r.DrawRect(x, y, w, h, bg)

	// Center text horizontally and vertically
	textX := x + (w-float32(labelW))/2
	// Use font size for visual centering (height includes descent which throws off centering)
	textY := y + (h-float32(defaultUISize))/2
	r.DrawText(textX, textY, label, theme.Text)

	return hovered && ws.JustClicked()
}

// Checkbox draws a checkbox and returns the new value.
func Checkbox(r *Renderer, ws *WidgetState, id string, x, y float32, label string, value bool, theme WidgetTheme) bool {
	boxSize := float32(18)
	fontSize := float32(defaultUISize)

	// Use the taller of box or font as the row height
	rowHeight := boxSize
	if fontSize > rowHeight {
		rowHeight = fontSize
	}

	// Center box and text vertically within row
	boxY := y + (rowHeight-boxSize)/2
	textY := y + (rowHeight-fontSize)/2

	labelW, _ := r.MeasureText(label)
	hovered := pointInRect(ws.MouseX, ws.MouseY, x, y, boxSize+8+float32(labelW), rowHeight)

	// Draw box
	r.DrawRect(x, boxY, boxSize, boxSize, theme.InputBg)
	r.DrawBorder(x, boxY, boxSize, boxSize, 1, theme.InputBorder)

	// Draw inner filled square if checked
	if value {
		inset := float32(4)
		innerSize := boxSize - inset*2
		r.DrawRect(x+inset, boxY+inset, innerSize, innerSize, theme.Accent)
	}

	// Draw label
	r.DrawText(x+boxSize+8, textY, label, theme.Text)

	// Toggle on click
	if hovered && ws.JustClicked() {
		return !value
	}
	return value
}

// Slider draws a horizontal slider and returns the new value in [min, max].
// Dragging anywhere along the track moves the knob; the value is clamped.
func Slider(r *Renderer, ws *WidgetState, id string, x, y, w float32, value, min, max float32, theme WidgetTheme) float32 {
	trackH := float32(4)
	knobSize := float32(16)
	rowHeight := float32(18)

	trackY := y + (rowHeight-trackH)/2
	knobY := y + (rowHeight-knobSize)/2

	hovered := pointInRect(ws.MouseX, ws.MouseY, x, y, w, rowHeight)

	// Grab on press, release ends the drag
	if hovered && ws.JustClicked() {
		ws.ActiveID = id
	}
	if ws.ActiveID == id && ws.JustReleased() {
		ws.ActiveID = ""
	}

	newValue := value
	if ws.ActiveID == id && ws.MouseDown {
		t := (ws.MouseX - x - knobSize/2) / (w - knobSize)
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		newValue = min + t*(max-min)
	}

	// Knob position from the (possibly updated) value
	t := (newValue - min) / (max - min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	knobX := x + t*(w-knobSize)

	// Track with filled portion up to the knob
	r.DrawRect(x, trackY, w, trackH, theme.InputBg)
	r.DrawRect(x, trackY, knobX-x+knobSize/2, trackH, theme.Accent)
	r.DrawBorder(x, trackY, w, trackH, 1, theme.InputBorder)

	// Knob
	knobBg := theme.Background
	if hovered || ws.ActiveID == id {
		knobBg = theme.BackgroundHov
	}
	r.DrawRect(knobX, knobY, knobSize, knobSize, knobBg)
	r.DrawBorder(knobX, knobY, knobSize, knobSize, 1, theme.InputBorder)

	return newValue
}

// Label draws a text label.
func Label(r *Renderer, x, y float32, text string, color Color) {
	r.DrawText(x, y, text, color)
}

func pointInRect(x, y, rx, ry, rw, rh float32) bool {
	return x >= rx && x <= rx+rw && y >= ry && y <= ry+rh
}
