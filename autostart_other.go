// ABOUTME: Stub for start-at-login functions on unsupported platforms (BSD, etc).
// ABOUTME: These functions return errors since start-at-login is not implemented there.

//go:build !darwin && !linux && !windows

package main

import "fmt"

// InstallAutostart is not supported on this platform.
func InstallAutostart() error {
	return fmt.Errorf("start at login is not supported on this platform")
}

// UninstallAutostart is not supported on this platform.
func UninstallAutostart() error {
	return fmt.Errorf("start at login is not supported on this platform")
}

// IsAutostartInstalled always returns false on unsupported platforms.
func IsAutostartInstalled() bool {
	return false
}
