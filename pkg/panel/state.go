// Package panel runs an operator session: axis state, commands and frames.
package panel

import (
	"sync"

	"github.com/gwillem/scara/pkg/scara"
)

// State is the session's axis state cell. The operator is its only writer;
// readers always see the latest committed value.
type State struct {
	mu   sync.RWMutex
	axes scara.AxisState
}

// Get returns the current axes.
func (s *State) Get() scara.AxisState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.axes
}

// Set stores a clamped value for channel c. It returns the stored value
// and whether it differs from the previous one.
func (s *State) Set(c scara.Channel, v int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.axes.Value(c)
	s.axes = s.axes.With(c, v)
	cur := s.axes.Value(c)
	return cur, cur != prev
}

// Reset returns every axis to home.
func (s *State) Reset() {
	s.mu.Lock()
	s.axes = scara.Home
	s.mu.Unlock()
}
