// ABOUTME: Tests for the feedback link action.
// ABOUTME: Verifies the fixed URL reaches the browser handler and errors stay silent.

package main

import (
	"errors"
	"testing"
)

func TestOpenFeedbackUsesFixedURL(t *testing.T) {
	var opened string
	orig := openURLFunc
	openURLFunc = func(url string) error {
		opened = url
		return nil
	}
	defer func() { openURLFunc = orig }()

	OpenFeedback()

	if opened != feedbackURL {
		t.Errorf("opened %q, want %q", opened, feedbackURL)
	}
}

func TestOpenFeedbackSwallowsLaunchError(t *testing.T) {
	calls := 0
	orig := openURLFunc
	openURLFunc = func(url string) error {
		calls++
		return errors.New("no browser")
	}
	defer func() { openURLFunc = orig }()

	// Must not panic and must not retry.
	OpenFeedback()

	if calls != 1 {
		t.Errorf("expected exactly 1 launch attempt, got %d", calls)
	}
}
