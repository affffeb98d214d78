// ABOUTME: Tests for the observable settings store.
// ABOUTME: Verifies defaults, synchronous notification, and token handling.

package main

import "testing"

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings()

	if got := s.FontScale(); got != 1.0 {
		t.Errorf("default FontScale = %v, want 1.0", got)
	}
	if s.Frozen() {
		t.Error("default Frozen = true, want false")
	}
	if s.Chime() {
		t.Error("default Chime = true, want false")
	}
}

func TestSettingsNotifySynchronous(t *testing.T) {
	s := NewSettings()

	notified := false
	var seen float64
	s.Subscribe(func() {
		notified = true
		seen = s.FontScale()
	})

	s.SetFontScale(1.5)

	if !notified {
		t.Fatal("observer not notified before SetFontScale returned")
	}
	if seen != 1.5 {
		t.Errorf("observer saw FontScale %v, want 1.5", seen)
	}
}

func TestSettingsOutOfRangeAccepted(t *testing.T) {
	s := NewSettings()

	s.SetFontScale(7.5)
	if got := s.FontScale(); got != 7.5 {
		t.Errorf("FontScale = %v, want 7.5 (no range validation)", got)
	}

	s.SetFontScale(-0.25)
	if got := s.FontScale(); got != -0.25 {
		t.Errorf("FontScale = %v, want -0.25 (no range validation)", got)
	}
}

func TestSettingsUnsubscribe(t *testing.T) {
	s := NewSettings()

	calls := 0
	token := s.Subscribe(func() { calls++ })

	s.SetFrozen(true)
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}

	s.Unsubscribe(token)
	s.SetFrozen(false)
	if calls != 1 {
		t.Errorf("expected no calls after Unsubscribe, got %d", calls)
	}

	// Unknown tokens are a no-op.
	s.Unsubscribe("not-a-token")
}

func TestSettingsMultipleObservers(t *testing.T) {
	s := NewSettings()

	a, b := 0, 0
	s.Subscribe(func() { a++ })
	s.Subscribe(func() { b++ })

	s.SetChime(true)

	if a != 1 || b != 1 {
		t.Errorf("observer calls = (%d, %d), want (1, 1)", a, b)
	}
}

func TestToggleFrozenRoundTrip(t *testing.T) {
	s := NewSettings()

	if v := s.ToggleFrozen(); !v {
		t.Error("first toggle = false, want true")
	}
	if v := s.ToggleFrozen(); v {
		t.Error("second toggle = true, want false")
	}
	if s.Frozen() {
		t.Error("two toggles did not restore the original state")
	}
}
