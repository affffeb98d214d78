// ABOUTME: Floating desktop clock with a menu bar icon and controls panel.
// ABOUTME: Entry point: loads preferences, builds the app shell, runs the loop.

package main

import (
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
)

const (
	appName = "SimpleDeskClock"
	Version = "1.2.0"
)

func init() {
	// GLFW event handling must stay on the first thread
	runtime.LockOSThread()
}

func main() {
	setupLogging()

	cfgPath := ConfigPath()
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", cfgPath).Msg("could not read preferences")
		}
		cfg = &Config{}
	}

	app := NewApp(cfg, cfgPath)
	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
}
