package main

import (
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog/log"
)

// WindowKind identifies the role of a window
type WindowKind int

const (
	WindowKindClock WindowKind = iota
	WindowKindPanel
)

// WindowManager owns GLFW, the application windows, and the event loop.
// All methods except RunOnMain, Wake, and Stop must be called from the
// main goroutine.
type WindowManager struct {
	windows   map[*glfw.Window]*ManagedWindow
	windowsMu sync.RWMutex
	primary   *glfw.Window // Primary window for GL context sharing
	fonts     *FontCache

	tasks   chan func()
	running bool
}

// ManagedWindow wraps a GLFW window with metadata
type ManagedWindow struct {
	Window   *glfw.Window
	Kind     WindowKind
	Renderer *Renderer
	OnClose  func()
	OnRender func() error
}

// NewWindowManager creates a window manager
func NewWindowManager(fonts *FontCache) *WindowManager {
	return &WindowManager{
		windows: make(map[*glfw.Window]*ManagedWindow),
		fonts:   fonts,
		tasks:   make(chan func(), 16),
	}
}

// Init initializes GLFW. Must run on the main goroutine before any window
// is created.
func (wm *WindowManager) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	return nil
}

// Terminate releases GLFW. Call after Run has returned.
func (wm *WindowManager) Terminate() {
	glfw.Terminate()
}

// CreateClockWindow creates the borderless floating clock window at the
// given frame.
func (wm *WindowManager) CreateClockWindow(frame Frame) (*glfw.Window, error) {
	wnd, err := wm.createWindow(appName, frame.W, frame.H, WindowKindClock)
	if err != nil {
		return nil, err
	}
	wnd.SetPos(frame.X, frame.Y)
	return wnd, nil
}

// CreatePanelWindow creates the controls panel, hidden until toggled.
func (wm *WindowManager) CreatePanelWindow(width, height int) (*glfw.Window, error) {
	return wm.createWindow(appName+" Controls", width, height, WindowKindPanel)
}

func (wm *WindowManager) createWindow(title string, width, height int, kind WindowKind) (*glfw.Window, error) {
	// Set window hints
	switch kind {
	case WindowKindClock:
		// Clock window: borderless, floating, transparent, never steals focus
		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Floating, glfw.True)
		glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
		glfw.WindowHint(glfw.FocusOnShow, glfw.False)
		glfw.WindowHint(glfw.Visible, glfw.True)
	case WindowKindPanel:
		// Panel: borderless floating popover, created hidden, takes focus
		// when shown so it can dismiss itself on focus loss
		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Floating, glfw.True)
		glfw.WindowHint(glfw.TransparentFramebuffer, glfw.False)
		glfw.WindowHint(glfw.FocusOnShow, glfw.True)
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	// Create window
	glfwWnd, err := glfw.CreateWindow(width, height, title, nil, wm.primary)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Make it the primary window if first window
	if wm.primary == nil {
		wm.primary = glfwWnd
	}

	// Swap interval is per-context state
	glfwWnd.MakeContextCurrent()
	glfw.SwapInterval(1)

	renderer, err := NewRenderer(glfwWnd, width, height, wm.fonts)
	if err != nil {
		glfwWnd.Destroy()
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	glfwWnd.SetCloseCallback(func(w *glfw.Window) {
		wm.closeWindow(w)
	})

	// Store managed window
	mw := &ManagedWindow{
		Window:   glfwWnd,
		Kind:     kind,
		Renderer: renderer,
	}

	wm.windowsMu.Lock()
	wm.windows[glfwWnd] = mw
	wm.windowsMu.Unlock()

	return glfwWnd, nil
}

// GetManagedWindow returns the managed window data
func (wm *WindowManager) GetManagedWindow(w *glfw.Window) *ManagedWindow {
	wm.windowsMu.RLock()
	defer wm.windowsMu.RUnlock()
	return wm.windows[w]
}

// SetWindowRenderCallback sets the render function for a window
func (wm *WindowManager) SetWindowRenderCallback(w *glfw.Window, cb func() error) {
	wm.windowsMu.Lock()
	defer wm.windowsMu.Unlock()
	if mw, ok := wm.windows[w]; ok {
		mw.OnRender = cb
	}
}

// SetWindowCloseCallback sets the close handler for a window
func (wm *WindowManager) SetWindowCloseCallback(w *glfw.Window, cb func()) {
	wm.windowsMu.Lock()
	defer wm.windowsMu.Unlock()
	if mw, ok := wm.windows[w]; ok {
		mw.OnClose = cb
	}
}

// RunOnMain queues a function to run on the main goroutine before the next
// frame. Safe to call from any goroutine.
func (wm *WindowManager) RunOnMain(fn func()) {
	wm.tasks <- fn
	glfw.PostEmptyEvent()
}

// Wake interrupts the event wait so the loop renders a fresh frame. Safe to
// call from any goroutine.
func (wm *WindowManager) Wake() {
	glfw.PostEmptyEvent()
}

// Run drives the event loop until Stop is called or all windows close.
func (wm *WindowManager) Run() error {
	wm.running = true
	defer func() { wm.running = false }()

	for wm.running && len(wm.windows) > 0 {
		// The timeout keeps the clock ticking even if a wake is missed
		glfw.WaitEventsTimeout(0.25)
		wm.drainTasks()

		// Render all visible windows
		wm.windowsMu.RLock()
		windows := make([]*glfw.Window, 0, len(wm.windows))
		for w := range wm.windows {
			windows = append(windows, w)
		}
		wm.windowsMu.RUnlock()

		for _, w := range windows {
			if w.ShouldClose() {
				continue
			}
			if w.GetAttrib(glfw.Visible) != glfw.True {
				continue
			}

			mw := wm.GetManagedWindow(w)
			if mw == nil {
				continue
			}

			w.MakeContextCurrent()

			width, height := w.GetSize()
			fbWidth, fbHeight := w.GetFramebufferSize()
			mw.Renderer.Resize(width, height, fbWidth, fbHeight)
			mw.Renderer.BeginFrame()

			if mw.OnRender != nil {
				if err := mw.OnRender(); err != nil {
					log.Error().Err(err).Msg("render error")
				}
			}

			mw.Renderer.EndFrame()
			w.SwapBuffers()
		}

		// Remove closed windows
		wm.windowsMu.Lock()
		for w, mw := range wm.windows {
			if w.ShouldClose() {
				w.MakeContextCurrent()
				mw.Renderer.Destroy()
				w.Destroy()
				if mw.OnClose != nil {
					mw.OnClose()
				}
				delete(wm.windows, w)
			}
		}
		wm.windowsMu.Unlock()
	}

	// Cleanup remaining windows
	wm.windowsMu.Lock()
	for w, mw := range wm.windows {
		w.MakeContextCurrent()
		mw.Renderer.Destroy()
		w.Destroy()
	}
	wm.windows = make(map[*glfw.Window]*ManagedWindow)
	wm.windowsMu.Unlock()

	return nil
}

// Stop stops the event loop. Safe to call from any goroutine.
func (wm *WindowManager) Stop() {
	// The flag is only touched on the main goroutine; the queue keeps it
	// race-free when Stop arrives from the tray or tick goroutines.
	wm.RunOnMain(func() {
		wm.running = false
	})
}

func (wm *WindowManager) drainTasks() {
	for {
		select {
		case fn := <-wm.tasks:
			fn()
		default:
			return
		}
	}
}

// closeWindow handles a window close request. The panel hides instead of
// closing so it can be toggled again.
func (wm *WindowManager) closeWindow(w *glfw.Window) {
	wm.windowsMu.RLock()
	mw := wm.windows[w]
	wm.windowsMu.RUnlock()

	if mw != nil && mw.Kind == WindowKindPanel {
		w.SetShouldClose(false)
		w.Hide()
		return
	}

	// The removal pass in Run destroys the window and fires OnClose.
	w.SetShouldClose(true)
}
