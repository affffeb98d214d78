// ABOUTME: Tests for the hourly chime synthesis.
// ABOUTME: Drains the streamer headlessly; the speaker is never initialized.

package main

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
)

func drainStreamer(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()

	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			for _, ch := range sample {
				if math.IsNaN(ch) {
					t.Fatal("streamer produced NaN sample")
				}
				if abs := math.Abs(ch); abs > peak {
					peak = abs
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestChimeStreamerLength(t *testing.T) {
	chime, err := chimeStreamer()
	if err != nil {
		t.Fatalf("chimeStreamer() error = %v", err)
	}

	total, _ := drainStreamer(t, chime)
	want := 2 * chimeSampleRate.N(220*time.Millisecond)
	if total != want {
		t.Errorf("chime length = %d samples, want %d", total, want)
	}
}

func TestChimeStreamerAmplitude(t *testing.T) {
	chime, err := chimeStreamer()
	if err != nil {
		t.Fatalf("chimeStreamer() error = %v", err)
	}

	_, peak := drainStreamer(t, chime)
	if peak > 1.0 {
		t.Errorf("peak amplitude = %v, want <= 1.0 (would clip)", peak)
	}
	if peak < 0.05 {
		t.Errorf("peak amplitude = %v, want an audible level", peak)
	}
}
