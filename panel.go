// ABOUTME: Controls panel renderer using custom OpenGL widgets.
// ABOUTME: Binds freeze, font scale, chime, autostart, feedback, and quit controls.

package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	panelWidth     = 280
	panelHeight    = 280
	panelPadding   = 16
	panelRowHeight = 32
	panelButtonH   = 30
)

// PanelRenderer draws the controls panel and applies widget changes to the
// settings store. The panel behaves like a popover: it is shown anchored
// near the menu bar icon and dismisses itself when it loses focus.
type PanelRenderer struct {
	renderer *Renderer
	window   *glfw.Window
	widgets  *WidgetState
	settings *Settings

	visible   bool
	autostart bool

	onFeedback func()
	onQuit     func()
}

// NewPanelRenderer creates a renderer for the controls panel.
func NewPanelRenderer(renderer *Renderer, window *glfw.Window, settings *Settings, onFeedback, onQuit func()) *PanelRenderer {
	pr := &PanelRenderer{
		renderer:   renderer,
		window:     window,
		widgets:    NewWidgetState(),
		settings:   settings,
		autostart:  IsAutostartInstalled(),
		onFeedback: onFeedback,
		onQuit:     onQuit,
	}

	if window != nil {
		// Transient-dismiss: clicking anywhere else unfocuses the panel
		window.SetFocusCallback(func(w *glfw.Window, focused bool) {
			if !focused && pr.visible {
				pr.Hide()
			}
		})
	}

	return pr
}

func panelTheme() WidgetTheme {
	if isDarkMode() {
		return WidgetTheme{
			Background:    Color{R: 0.18, G: 0.18, B: 0.20, A: 1},
			BackgroundHov: Color{R: 0.25, G: 0.25, B: 0.28, A: 1},
			Border:        Color{R: 0.3, G: 0.3, B: 0.32, A: 1},
			Text:          Color{R: 0.95, G: 0.95, B: 0.95, A: 1},
			TextMuted:     Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
			Accent:        Color{R: 0.3, G: 0.5, B: 0.9, A: 1},
			InputBg:       Color{R: 0.12, G: 0.12, B: 0.14, A: 1},
			InputBorder:   Color{R: 0.3, G: 0.3, B: 0.32, A: 1},
		}
	}
	return WidgetTheme{
		Background:    Color{R: 0.92, G: 0.92, B: 0.93, A: 1},
		BackgroundHov: Color{R: 0.85, G: 0.85, B: 0.87, A: 1},
		Border:        Color{R: 0.75, G: 0.75, B: 0.77, A: 1},
		Text:          Color{R: 0.12, G: 0.12, B: 0.14, A: 1},
		TextMuted:     Color{R: 0.45, G: 0.45, B: 0.47, A: 1},
		Accent:        Color{R: 0.25, G: 0.45, B: 0.85, A: 1},
		InputBg:       Color{R: 0.98, G: 0.98, B: 0.98, A: 1},
		InputBorder:   Color{R: 0.7, G: 0.7, B: 0.72, A: 1},
	}
}

// Visible reports whether the panel is currently shown.
func (pr *PanelRenderer) Visible() bool {
	return pr.visible
}

// Toggle shows the panel if hidden and hides it if shown.
func (pr *PanelRenderer) Toggle() {
	if pr.visible {
		pr.Hide()
	} else {
		pr.Show()
	}
}

// Show positions the panel near the menu bar icon, shows it, and gives it
// focus so it can dismiss itself later.
func (pr *PanelRenderer) Show() {
	pr.visible = true
	pr.autostart = IsAutostartInstalled()
	if pr.window == nil {
		return
	}
	pr.positionWindow()
	pr.window.Show()
	pr.window.Focus()
}

// Hide hides the panel.
func (pr *PanelRenderer) Hide() {
	pr.visible = false
	if pr.window == nil {
		return
	}
	pr.window.Hide()
}

func (pr *PanelRenderer) positionWindow() {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		pr.window.SetPos(100, 100)
		return
	}

	// Workarea excludes the menu bar, so the panel lands just below it
	workX, workY, workW, _ := monitor.GetWorkarea()
	margin := 8
	x := workX + workW - panelWidth - margin
	y := workY + margin

	pr.window.SetPos(x, y)
}

// Render draws the controls panel.
func (pr *PanelRenderer) Render() error {
	width, height := pr.window.GetSize()
	pr.widgets.UpdateMouse(pr.window)

	theme := panelTheme()

	pr.renderer.DrawRect(0, 0, float32(width), float32(height), theme.Background)
	pr.renderer.DrawBorder(0, 0, float32(width), float32(height), 1, theme.Border)

	x := float32(panelPadding)
	y := float32(panelPadding)
	contentW := float32(width) - panelPadding*2

	Label(pr.renderer, x, y, appName, theme.Text)
	y += panelRowHeight

	pr.renderer.DrawRect(x, y, contentW, 1, theme.Border)
	y += panelPadding

	// Freeze drops always-on-top and disables dragging
	frozen := pr.settings.Frozen()
	if v := Checkbox(pr.renderer, pr.widgets, "frozen", x, y, "Freeze clock position", frozen, theme); v != frozen {
		pr.settings.SetFrozen(v)
	}
	y += panelRowHeight

	scale := pr.settings.FontScale()
	Label(pr.renderer, x, y, "Font scale", theme.Text)
	valueText := fmt.Sprintf("%.2fx", scale)
	vw, _ := pr.renderer.MeasureText(valueText)
	Label(pr.renderer, x+contentW-float32(vw), y, valueText, theme.TextMuted)
	y += 24

	if v := Slider(pr.renderer, pr.widgets, "scale", x, y, contentW, float32(scale), minFontScale, maxFontScale, theme); float64(v) != scale {
		pr.settings.SetFontScale(float64(v))
	}
	y += panelRowHeight

	chime := pr.settings.Chime()
	if v := Checkbox(pr.renderer, pr.widgets, "chime", x, y, "Hourly chime", chime, theme); v != chime {
		pr.settings.SetChime(v)
	}
	y += panelRowHeight

	if v := Checkbox(pr.renderer, pr.widgets, "autostart", x, y, "Start at login", pr.autostart, theme); v != pr.autostart {
		pr.autostart = v
		pr.applyAutostart(v)
	}
	y += panelRowHeight

	pr.renderer.DrawRect(x, y, contentW, 1, theme.Border)

	// Action buttons at bottom
	btnY := float32(height) - panelPadding - panelButtonH
	btnGap := float32(10)

	btnX := x
	if Button(pr.renderer, pr.widgets, "feedback", btnX, btnY, 0, panelButtonH, "Send Feedback", theme) {
		if pr.onFeedback != nil {
			pr.onFeedback()
		}
	}
	btnX += ButtonWidth(pr.renderer, "Send Feedback", 12) + btnGap

	if Button(pr.renderer, pr.widgets, "quit", btnX, btnY, 0, panelButtonH, "Quit", theme) {
		if pr.onQuit != nil {
			pr.onQuit()
		}
	}

	// Version in bottom right
	versionText := "v" + Version
	verW, _ := pr.renderer.MeasureText(versionText)
	pr.renderer.DrawText(float32(width)-float32(verW)-panelPadding, btnY+8, versionText, theme.TextMuted)

	return nil
}

func (pr *PanelRenderer) applyAutostart(enable bool) {
	if enable {
		_ = InstallAutostart()
	} else {
		_ = UninstallAutostart()
	}
}
