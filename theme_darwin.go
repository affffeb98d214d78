// ABOUTME: macOS theme detection.
// ABOUTME: Checks AppleInterfaceStyle to determine dark/light mode.

//go:build darwin

package main

import (
	"os/exec"
	"strings"
	"time"
)

var (
	darkModeValue   bool
	darkModeChecked time.Time
)

// isDarkMode reports whether the system is in dark mode. Palettes read this
// every frame, so the answer is cached for a few seconds between queries.
// Main thread only.
func isDarkMode() bool {
	if time.Since(darkModeChecked) < 5*time.Second {
		return darkModeValue
	}
	darkModeChecked = time.Now()

	cmd := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle")
	output, err := cmd.Output()
	if err != nil {
		// Property doesn't exist = light mode
		darkModeValue = false
		return false
	}
	darkModeValue = strings.TrimSpace(string(output)) == "Dark"
	return darkModeValue
}
