// ABOUTME: Tests for clock formatting and font size helpers.
// ABOUTME: Covers the display formats, scale math, and hour boundary checks.

package main

import (
	"testing"
	"time"
)

func TestFormatClockDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday single digit day", time.Date(2026, time.January, 5, 14, 37, 0, 0, time.UTC), "MONDAY 05 JAN"},
		{"wednesday double digit day", time.Date(2025, time.December, 31, 9, 0, 0, 0, time.UTC), "WEDNESDAY 31 DEC"},
		{"saturday mid month", time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), "SATURDAY 15 AUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatClockDate(tt.in)
			if got != tt.want {
				t.Errorf("FormatClockDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"afternoon", time.Date(2026, time.January, 5, 14, 37, 0, 0, time.UTC), "14:37"},
		{"midnight", time.Date(2026, time.January, 5, 0, 0, 59, 0, time.UTC), "00:00"},
		{"single digit hour", time.Date(2026, time.January, 5, 7, 5, 0, 0, time.UTC), "07:05"},
		{"no twelve hour rollover", time.Date(2026, time.January, 5, 23, 59, 0, 0, time.UTC), "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatClockTime(tt.in)
			if got != tt.want {
				t.Errorf("FormatClockTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFontSizesScale(t *testing.T) {
	for _, scale := range []float64{0.5, 0.75, 1.0, 1.3, 1.5, 2.0} {
		if got, want := DateFontSize(scale), 30*scale; got != want {
			t.Errorf("DateFontSize(%v) = %v, want %v", scale, got, want)
		}
		if got, want := TimeFontSize(scale), 90*scale; got != want {
			t.Errorf("TimeFontSize(%v) = %v, want %v", scale, got, want)
		}
	}
}

func TestFontPixels(t *testing.T) {
	tests := []struct {
		size float64
		want int
	}{
		{30, 30},
		{39.0, 39},
		{45.4, 45},
		{45.5, 46},
		{0.2, 1},
		{-5, 1},
	}

	for _, tt := range tests {
		if got := fontPixels(tt.size); got != tt.want {
			t.Errorf("fontPixels(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestCrossedHour(t *testing.T) {
	base := time.Date(2026, time.March, 9, 13, 59, 58, 0, time.Local)

	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want bool
	}{
		{"same hour", base, base.Add(time.Second), false},
		{"across hour", base, base.Add(3 * time.Second), true},
		{"across midnight", time.Date(2026, time.March, 9, 23, 59, 59, 0, time.Local), time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local), true},
		{"clock stepped backwards", base.Add(time.Minute), base, false},
		{"exactly on boundary", time.Date(2026, time.March, 9, 13, 0, 0, 0, time.Local), time.Date(2026, time.March, 9, 14, 0, 0, 0, time.Local), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := crossedHour(tt.prev, tt.now); got != tt.want {
				t.Errorf("crossedHour() = %v, want %v", got, tt.want)
			}
		})
	}
}
