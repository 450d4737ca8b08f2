// Package knob holds the named scalar parameters ("DJ knobs") that modulate
// the demo's visual attributes. Values integrate a signed velocity each tick
// and stay clamped inside per-knob bounds.
package knob

import (
	"sync"

	"github.com/lixenwraith/curvedeck/vmath"
)

// Spec configures one knob at store creation
type Spec struct {
	Name     string
	Value    float32
	Min      float32
	Max      float32
	Velocity float32 // units/sec, signed
}

type entry struct {
	value    float32
	min      float32
	max      float32
	velocity float32
}

// Store is a named registry of bounded, velocity-driven scalars
//
// The store is a value the caller owns and hands to whoever needs it
// (integrator, renderer, input); there is no package-level instance.
// Every operation is total: unknown names read as 0 and mutate as no-ops,
// so a mistyped name in a live set never halts rendering
type Store struct {
	mu    sync.RWMutex
	knobs map[string]*entry
	order []string // insertion order, for stable snapshots
}

// NewStore creates a store populated with the caller's knob set
// min > max is normalized by swapping; the initial value is clamped
func NewStore(specs []Spec) *Store {
	s := &Store{
		knobs: make(map[string]*entry, len(specs)),
		order: make([]string, 0, len(specs)),
	}
	for _, sp := range specs {
		lo, hi := sp.Min, sp.Max
		if lo > hi {
			lo, hi = hi, lo
		}
		if _, dup := s.knobs[sp.Name]; !dup {
			s.order = append(s.order, sp.Name)
		}
		s.knobs[sp.Name] = &entry{
			value:    vmath.Clamp(sp.Value, lo, hi),
			min:      lo,
			max:      hi,
			velocity: sp.Velocity,
		}
	}
	return s
}

// Update advances every knob by velocity*dt, clamped to its bounds
// Call at most once per frame tick with that frame's elapsed time
func (s *Store) Update(dt float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.knobs {
		k.value = vmath.Clamp(k.value+k.velocity*dt, k.min, k.max)
	}
}

// Get returns the current value, or 0 for an unknown name
func (s *Store) Get(name string) float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if k, ok := s.knobs[name]; ok {
		return k.value
	}
	return 0
}

// Set overwrites the value, clamped to the knob's bounds; no-op if absent
func (s *Store) Set(name string, value float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if k, ok := s.knobs[name]; ok {
		k.value = vmath.Clamp(value, k.min, k.max)
	}
}

// SetVelocity overwrites the velocity; no-op if absent
func (s *Store) SetVelocity(name string, velocity float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if k, ok := s.knobs[name]; ok {
		k.velocity = velocity
	}
}

// NudgeVelocity adds delta to the velocity; no-op if absent
// Live-input helper so key handlers stay one-liners
func (s *Store) NudgeVelocity(name string, delta float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if k, ok := s.knobs[name]; ok {
		k.velocity += delta
	}
}

// State is one knob's current readings, for HUD display
type State struct {
	Name     string
	Value    float32
	Min      float32
	Max      float32
	Velocity float32
}

// Snapshot returns all knobs in creation order
func (s *Store) Snapshot() []State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]State, 0, len(s.order))
	for _, name := range s.order {
		k := s.knobs[name]
		out = append(out, State{
			Name:     name,
			Value:    k.value,
			Min:      k.min,
			Max:      k.max,
			Velocity: k.velocity,
		})
	}
	return out
}
