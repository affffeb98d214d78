// ABOUTME: Menu bar icon for toggling the controls panel and quick actions.
// ABOUTME: Provides menu items for controls, freeze, chime, feedback, and quit.

package main

import (
	"time"

	"fyne.io/systray"
	"github.com/rs/zerolog/log"
)

// TrayConfig wires menu actions to the application.
type TrayConfig struct {
	OnToggleControls func()
	OnToggleFrozen   func()
	OnToggleChime    func()
	OnFeedback       func()
	OnQuit           func()

	// State getters keep the checkable items in sync with the settings
	// store, whichever surface mutated it.
	Frozen func() bool
	Chime  func() bool
}

var (
	trayEnd  func()
	trayDone chan struct{}
)

// StartTray initializes the menu bar icon for use with an external event
// loop. Call this before starting the main GUI loop.
func StartTray(cfg TrayConfig) {
	var mControls, mFrozen, mChime, mFeedback, mQuit *systray.MenuItem

	trayDone = make(chan struct{})

	start, end := systray.RunWithExternalLoop(func() {
		// onReady - called after nativeStart()
		if icon, err := TrayIcon(); err != nil {
			log.Warn().Err(err).Msg("failed to render tray icon")
		} else {
			// Template icons tint correctly in light and dark menu bars
			systray.SetTemplateIcon(icon, icon)
		}
		systray.SetTooltip(appName)

		mControls = systray.AddMenuItem("Controls", "Show or hide the controls panel")
		systray.AddSeparator()
		mFrozen = systray.AddMenuItemCheckbox("Freeze Position", "Keep the clock fixed in place", snapshot(cfg.Frozen))
		mChime = systray.AddMenuItemCheckbox("Hourly Chime", "Play a chime on the hour", snapshot(cfg.Chime))
		systray.AddSeparator()
		mFeedback = systray.AddMenuItem("Send Feedback", "Open the feedback form")
		systray.AddSeparator()
		mQuit = systray.AddMenuItem("Quit", "Quit "+appName)

		syncChecks := func() {
			setChecked(mFrozen, snapshot(cfg.Frozen))
			setChecked(mChime, snapshot(cfg.Chime))
		}

		// Keep checkboxes in sync with changes made from the panel
		go func() {
			for {
				select {
				case <-trayDone:
					return
				case <-time.After(2 * time.Second):
					syncChecks()
				}
			}
		}()

		// Handle menu clicks in background
		go func() {
			for {
				select {
				case <-trayDone:
					return
				case <-mControls.ClickedCh:
					if cfg.OnToggleControls != nil {
						cfg.OnToggleControls()
					}
				case <-mFrozen.ClickedCh:
					if cfg.OnToggleFrozen != nil {
						cfg.OnToggleFrozen()
					}
					syncChecks()
				case <-mChime.ClickedCh:
					if cfg.OnToggleChime != nil {
						cfg.OnToggleChime()
					}
					syncChecks()
				case <-mFeedback.ClickedCh:
					if cfg.OnFeedback != nil {
						cfg.OnFeedback()
					}
				case <-mQuit.ClickedCh:
					if cfg.OnQuit != nil {
						cfg.OnQuit()
					}
				}
			}
		}()
	}, func() {
		// onExit
	})

	trayEnd = end
	start()
}

// StopTray cleans up the menu bar icon.
func StopTray() {
	if trayDone != nil {
		close(trayDone)
		trayDone = nil
	}
	if trayEnd != nil {
		trayEnd()
		trayEnd = nil
	}
}

func snapshot(get func() bool) bool {
	if get == nil {
		return false
	}
	return get()
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}
