// ABOUTME: Application shell owning the settings store, windows, tray, and timers.
// ABOUTME: Provides a deterministic startup and shutdown path for every resource.

package main

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog/log"
)

// App owns every long-lived resource: the settings store, the window
// manager, the clock face, the controls panel, the tray icon, the tick
// timer, and the preferences watcher. Run builds them in order and
// Shutdown releases them in reverse.
type App struct {
	settings *Settings
	config   *Config
	cfgPath  string
	wm       *WindowManager

	clockWnd *glfw.Window
	face     *ClockFace
	panel    *PanelRenderer

	ticker     *time.Ticker
	tickerDone chan struct{}
	lastTick   time.Time

	watcher     *fsnotify.Watcher
	unsubscribe func()
}

// NewApp creates the application shell around a loaded (possibly empty)
// configuration.
func NewApp(cfg *Config, cfgPath string) *App {
	if cfg == nil {
		cfg = &Config{}
	}
	return &App{
		settings: NewSettings(),
		config:   cfg,
		cfgPath:  cfgPath,
	}
}

// Run builds all resources and drives the event loop until Quit is called
// or the clock window closes. It must run on the main goroutine.
func (a *App) Run() error {
	a.settings.SetChime(a.config.Chime)

	fontData, err := LoadDefaultFont()
	if err != nil {
		return err
	}
	a.wm = NewWindowManager(NewFontCache(fontData))

	if err := a.wm.Init(); err != nil {
		return err
	}
	defer a.shutdown()

	frame := a.config.RestoreFrame()
	clockWnd, err := a.wm.CreateClockWindow(frame)
	if err != nil {
		return err
	}
	a.clockWnd = clockWnd

	clockMW := a.wm.GetManagedWindow(clockWnd)
	a.face = NewClockFace(clockMW.Renderer, clockWnd, a.settings, a.onFrameMoved)
	a.wm.SetWindowRenderCallback(clockWnd, a.face.Render)
	a.wm.SetWindowCloseCallback(clockWnd, a.wm.Stop)

	panelWnd, err := a.wm.CreatePanelWindow(panelWidth, panelHeight)
	if err != nil {
		return err
	}
	panelMW := a.wm.GetManagedWindow(panelWnd)
	a.panel = NewPanelRenderer(panelMW.Renderer, panelWnd, a.settings, OpenFeedback, a.Quit)
	a.wm.SetWindowRenderCallback(panelWnd, a.panel.Render)

	// Settings changes apply on the main thread, whichever goroutine set them
	token := a.settings.Subscribe(func() {
		a.wm.RunOnMain(a.applySettings)
	})
	a.unsubscribe = func() { a.settings.Unsubscribe(token) }

	a.startTicker()
	a.startWatcher()

	StartTray(TrayConfig{
		OnToggleControls: func() { a.wm.RunOnMain(a.panel.Toggle) },
		OnToggleFrozen:   func() { a.settings.ToggleFrozen() },
		OnToggleChime:    func() { a.settings.ToggleChime() },
		OnFeedback:       OpenFeedback,
		OnQuit:           a.Quit,
		Frozen:           a.settings.Frozen,
		Chime:            a.settings.Chime,
	})

	log.Info().Str("frame", FormatFrame(frame)).Msg("clock started")
	return a.wm.Run()
}

// Quit stops the event loop. Safe to call from any goroutine; Run's
// shutdown path then releases everything.
func (a *App) Quit() {
	log.Info().Msg("quitting")
	a.wm.Stop()
}

func (a *App) shutdown() {
	if a.ticker != nil {
		a.ticker.Stop()
		close(a.tickerDone)
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	StopTray()
	a.wm.Terminate()
}

// onFrameMoved persists the frame on every window move, with no debouncing.
func (a *App) onFrameMoved(f Frame) {
	a.config.Frame = FormatFrame(f)
	if err := a.config.Save(a.cfgPath); err != nil {
		log.Warn().Err(err).Msg("failed to save frame")
	}
}

// applySettings pushes the current settings onto the window and persists
// the chime preference. Runs on the main thread.
func (a *App) applySettings() {
	a.face.ApplyFrozen(a.settings.Frozen())

	if chime := a.settings.Chime(); a.config.Chime != chime {
		a.config.Chime = chime
		if err := a.config.Save(a.cfgPath); err != nil {
			log.Warn().Err(err).Msg("failed to save chime preference")
		}
	}
}

func (a *App) startTicker() {
	a.lastTick = time.Now()
	a.ticker = time.NewTicker(time.Second)
	a.tickerDone = make(chan struct{})

	go func() {
		for {
			select {
			case <-a.tickerDone:
				return
			case now := <-a.ticker.C:
				if a.settings.Chime() && crossedHour(a.lastTick, now) {
					PlayChime()
				}
				a.lastTick = now
				a.wm.Wake()
			}
		}
	}()
}

// startWatcher follows external edits to the preferences file, so a change
// written by another process shows up without a restart.
func (a *App) startWatcher() {
	watcher, err := WatchConfig(a.cfgPath, func(cfg *Config) {
		a.wm.RunOnMain(func() { a.applyExternalConfig(cfg) })
	})
	if err != nil {
		log.Warn().Err(err).Msg("preferences watcher unavailable")
		return
	}
	a.watcher = watcher
}

// applyExternalConfig folds an externally edited config into the running
// app. Values equal to the current state are skipped, which also breaks
// the loop caused by our own saves.
func (a *App) applyExternalConfig(cfg *Config) {
	a.config = cfg

	if cfg.Frame != "" {
		if f, err := ParseFrame(cfg.Frame); err == nil {
			x, y := a.clockWnd.GetPos()
			if f.X != x || f.Y != y {
				g := ClampToDisplay(f)
				a.clockWnd.SetPos(g.X, g.Y)
			}
		}
	}

	if cfg.Chime != a.settings.Chime() {
		a.settings.SetChime(cfg.Chime)
	}
}
