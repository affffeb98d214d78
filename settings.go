// ABOUTME: In-memory observable settings store shared by the clock face and
// ABOUTME: the controls panel. The store itself never touches disk.

package main

import (
	"sync"

	"github.com/google/uuid"
)

// Settings holds the mutable display state. It is handed explicitly to every
// consumer; observers are notified synchronously on the mutating goroutine,
// so callbacks must not call back into the store.
type Settings struct {
	mu        sync.Mutex
	fontScale float64
	frozen    bool
	chime     bool
	observers map[string]func()
}

// NewSettings returns a store with the default font scale, unfrozen.
func NewSettings() *Settings {
	return &Settings{
		fontScale: defaultFontScale,
		observers: make(map[string]func()),
	}
}

// Subscribe registers an observer and returns its token for Unsubscribe.
func (s *Settings) Subscribe(fn func()) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.observers[token] = fn
	return token
}

// Unsubscribe removes an observer. Unknown tokens are ignored.
func (s *Settings) Unsubscribe(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, token)
}

// FontScale returns the current font scale multiplier.
func (s *Settings) FontScale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fontScale
}

// SetFontScale stores a new scale and notifies observers. The slider keeps
// values inside [0.5, 2.0]; programmatic callers are not range-checked.
func (s *Settings) SetFontScale(v float64) {
	s.mu.Lock()
	s.fontScale = v
	s.mu.Unlock()
	s.notify()
}

// Frozen reports whether the clock window is pinned to the desktop.
func (s *Settings) Frozen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frozen
}

// SetFrozen stores the frozen flag and notifies observers.
func (s *Settings) SetFrozen(v bool) {
	s.mu.Lock()
	s.frozen = v
	s.mu.Unlock()
	s.notify()
}

// ToggleFrozen flips the frozen flag and returns the new value.
func (s *Settings) ToggleFrozen() bool {
	s.mu.Lock()
	s.frozen = !s.frozen
	v := s.frozen
	s.mu.Unlock()
	s.notify()
	return v
}

// Chime reports whether the hourly chime is enabled.
func (s *Settings) Chime() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chime
}

// ToggleChime flips the chime flag and returns the new value.
func (s *Settings) ToggleChime() bool {
	s.mu.Lock()
	s.chime = !s.chime
	v := s.chime
	s.mu.Unlock()
	s.notify()
	return v
}

// SetChime stores the chime flag and notifies observers.
func (s *Settings) SetChime(v bool) {
	s.mu.Lock()
	s.chime = v
	s.mu.Unlock()
	s.notify()
}

// notify invokes every observer outside the lock so callbacks can read the
// store. Completion happens before the triggering setter returns.
func (s *Settings) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
