// ABOUTME: Tests for controls panel show/hide behavior.
// ABOUTME: Verifies toggle parity without requiring a display.

package main

import "testing"

func TestPanelStartsHidden(t *testing.T) {
	pr := NewPanelRenderer(nil, nil, NewSettings(), nil, nil)

	if pr.Visible() {
		t.Error("Panel should start hidden")
	}
}

func TestPanelToggleParity(t *testing.T) {
	pr := NewPanelRenderer(nil, nil, NewSettings(), nil, nil)

	// Odd number of toggles leaves the panel shown, even leaves it hidden
	for i := 1; i <= 6; i++ {
		pr.Toggle()
		wantVisible := i%2 == 1
		if pr.Visible() != wantVisible {
			t.Errorf("After %d toggles: visible = %v, want %v", i, pr.Visible(), wantVisible)
		}
	}
}

func TestPanelShowIsIdempotent(t *testing.T) {
	pr := NewPanelRenderer(nil, nil, NewSettings(), nil, nil)

	pr.Show()
	pr.Show()
	if !pr.Visible() {
		t.Error("Panel should be visible after Show")
	}

	pr.Hide()
	if pr.Visible() {
		t.Error("Panel should be hidden after Hide")
	}

	pr.Hide()
	if pr.Visible() {
		t.Error("Hiding a hidden panel should keep it hidden")
	}
}
