package stepflow

import (
	"slices"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"
	"go.uber.org/atomic"
)

// State tracks progress toward the completion condition of one screen.
// A state completes either after a fixed number of steps (counted mode) or
// once every required named step has been seen (named mode). The mode is
// fixed at construction.
//
// When a state attached to a Coordinator completes, the coordinator advances
// to the next state in its sequence. A state completes at most once.
type State struct {
	name   string
	screen Screen

	observed []string
	required []string // nil in counted mode
	count    int
	target   int

	completed atomic.Bool

	coordinator *Coordinator
	handle      Handle

	onStep           func(name string)
	beforeTransition func(s *State)
}

// StateOption configures a State.
type StateOption func(*State)

// WithName labels the state in logs and tooling.
func WithName(name string) StateOption {
	return func(s *State) {
		s.name = name
	}
}

// WithScreen binds screen to the state at construction.
func WithScreen(screen Screen) StateOption {
	return func(s *State) {
		s.screen = screen
	}
}

// OnStep registers a callback run after every recorded step, including steps
// recorded after completion.
func OnStep(fn func(name string)) StateOption {
	return func(s *State) {
		s.onStep = fn
	}
}

// BeforeTransition registers setup to run right before the coordinator shows
// this state's screen. The hook may bind a different screen.
func BeforeTransition(fn func(s *State)) StateOption {
	return func(s *State) {
		s.beforeTransition = fn
	}
}

// NewCountedState creates a state that completes after target steps, named
// or anonymous. A target below 1 is treated as 1.
func NewCountedState(target int, opts ...StateOption) *State {
	if target < 1 {
		target = constants.DefaultTargetCount
	}
	s := &State{target: target}
	s.apply(opts)
	return s
}

// NewNamedState creates a state that completes once every name in steps has
// been recorded. Order doesn't matter and duplicates are tolerated. An empty
// list completes on the first recorded step.
func NewNamedState(steps []string, opts ...StateOption) *State {
	s := &State{required: append(make([]string, 0, len(steps)), steps...)}
	s.apply(opts)
	return s
}

// NewStepState creates a state that completes once step has been recorded.
func NewStepState(step string, opts ...StateOption) *State {
	return NewNamedState([]string{step}, opts...)
}

func (s *State) apply(opts []StateOption) {
	for _, opt := range opts {
		opt(s)
	}
}

// Name returns the label given with WithName.
func (s *State) Name() string {
	return s.name
}

// Screen returns the bound screen, or nil.
func (s *State) Screen() Screen {
	return s.screen
}

// Required returns the named steps the state waits for, or nil in counted mode.
func (s *State) Required() []string {
	if s.required == nil {
		return nil
	}
	return slices.Clone(s.required)
}

// Target returns the step count the state waits for, or 0 in named mode.
func (s *State) Target() int {
	return s.target
}

// Steps returns the named steps observed so far, in the order recorded.
func (s *State) Steps() []string {
	return slices.Clone(s.observed)
}

// Count returns the number of steps recorded so far.
func (s *State) Count() int {
	return s.count
}

// Completed reports whether the completion condition has been met.
func (s *State) Completed() bool {
	return s.completed.Load()
}

// Progress returns how much of the completion condition is satisfied. In
// named mode it counts distinct required names seen.
func (s *State) Progress() (done, total int) {
	if s.required == nil {
		return min(s.count, s.target), s.target
	}

	for i, name := range s.required {
		if slices.Contains(s.required[:i], name) {
			continue
		}
		total++
		if slices.Contains(s.observed, name) {
			done++
		}
	}
	return done, total
}

// Bind associates screen with the state. If the state already belongs to a
// coordinator's sequence, the screen receives its handle right away;
// otherwise it is bound when the sequence is set.
func (s *State) Bind(screen Screen) {
	s.screen = screen
	if screen != nil && s.handle.Bound() {
		screen.BindState(s.handle)
	}
}

// PrepareTransition runs the BeforeTransition hook and returns the screen to
// show for this state, or nil if there is none.
func (s *State) PrepareTransition() Screen {
	if s.beforeTransition != nil {
		s.beforeTransition(s)
	}
	return s.screen
}

// RecordStep records a step. An empty name records an anonymous step, which
// only moves counted states forward.
//
// On a state that belongs to a coordinator the step is recorded on the
// coordinator's dispatcher; otherwise it is recorded on the caller.
func (s *State) RecordStep(name string) {
	if s.coordinator != nil {
		s.handle.Step(name)
		return
	}
	s.record(name)
}

// record applies a step and reports whether it completed the state.
func (s *State) record(name string) bool {
	if name != "" {
		s.observed = append(s.observed, name)
	}
	s.count++

	done := false
	if !s.completed.Load() && s.satisfied() {
		s.completed.Store(true)
		done = true
	}

	if s.onStep != nil {
		s.onStep(name)
	}
	return done
}

func (s *State) satisfied() bool {
	if s.required != nil {
		for _, name := range s.required {
			if !slices.Contains(s.observed, name) {
				return false
			}
		}
		return true
	}
	return s.count == s.target
}

// attach places the state at index in c's current sequence.
func (s *State) attach(c *Coordinator, h Handle) {
	s.coordinator = c
	s.handle = h
	if s.screen != nil {
		s.screen.BindState(h)
	}
}
