// ABOUTME: Opens the feedback form in the user's default browser.
// ABOUTME: Launch success is not validated beyond starting the handler.

package main

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog/log"
)

// feedbackURL is the fixed feedback form; the only network-facing thing the
// widget does is hand this to the OS browser handler.
const feedbackURL = "https://forms.gle/dK4wVjMhRz6ZtFkQ9"

// OpenFeedback opens the feedback form. Errors are logged, never surfaced.
func OpenFeedback() {
	if err := openURL(feedbackURL); err != nil {
		log.Warn().Err(err).Str("url", feedbackURL).Msg("open feedback link")
	}
}

// openURLFunc is the function used to open URLs. Replaceable for testing.
var openURLFunc = openURLDefault

// openURL opens the URL in the default browser.
func openURL(url string) error {
	return openURLFunc(url)
}

// openURLDefault is the default implementation that opens URLs in the browser.
func openURLDefault(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
