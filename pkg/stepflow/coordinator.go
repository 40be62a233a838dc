package stepflow

import (
	"log/slog"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow/internal"
	"go.uber.org/atomic"
)

// TransitionKind says how a screen was brought on screen.
type TransitionKind int

const (
	TransitionRoot    TransitionKind = iota // Installed as the window root
	TransitionStack                         // Set as the only screen of a navigation root
	TransitionPush                          // Pushed onto a navigation root
	TransitionPresent                       // Presented modally
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionRoot:
		return "root"
	case TransitionStack:
		return "stack"
	case TransitionPush:
		return "push"
	case TransitionPresent:
		return "present"
	default:
		return "unknown"
	}
}

// Transition describes a screen change performed by the coordinator.
type Transition struct {
	Kind   TransitionKind
	Index  int
	State  *State
	Screen Screen
}

// Coordinator walks an ordered sequence of states. It shows the first state's
// screen when the sequence is set and moves to the next one each time the
// current state completes.
//
// All work runs on the coordinator's Dispatcher. Accessors other than
// Position and Finished are meant for code running on that dispatcher.
type Coordinator struct {
	window       Window
	dispatcher   Dispatcher
	logger       *slog.Logger
	onTransition func(Transition)

	states     []*State
	position   atomic.Int64
	generation atomic.Uint64
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithDispatcher sets where steps and transitions run. Defaults to Immediate.
func WithDispatcher(d Dispatcher) CoordinatorOption {
	return func(c *Coordinator) {
		c.dispatcher = d
	}
}

// WithLogger replaces the internal stepflow logger.
func WithLogger(logger *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// OnTransition registers a callback run after every screen change.
func OnTransition(fn func(Transition)) CoordinatorOption {
	return func(c *Coordinator) {
		c.onTransition = fn
	}
}

// NewCoordinator creates a coordinator presenting on window. A nil window is
// allowed; transitions then do nothing.
func NewCoordinator(window Window, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		window:     window,
		dispatcher: NewImmediate(),
		logger:     internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.position.Store(-1)
	return c
}

// SetStates replaces the sequence, resets the position to the first state and
// installs its screen as the window root. Handles bound to a previous
// sequence stop working.
func (c *Coordinator) SetStates(states ...*State) {
	c.dispatcher.Dispatch(func() {
		c.setStates(states)
	})
}

// Advance moves to the next state and shows its screen. Past the end of the
// sequence it does nothing.
func (c *Coordinator) Advance() {
	c.dispatcher.Dispatch(c.advance)
}

// Position returns the index of the current state, or -1 before a sequence
// is set. It may exceed the last index once the sequence has finished.
func (c *Coordinator) Position() int {
	return int(c.position.Load())
}

// Len returns the number of states in the sequence.
func (c *Coordinator) Len() int {
	return len(c.states)
}

// States returns a copy of the sequence.
func (c *Coordinator) States() []*State {
	return append([]*State(nil), c.states...)
}

// Current returns the state at the current position, or nil.
func (c *Coordinator) Current() *State {
	pos := c.Position()
	if pos < 0 || pos >= len(c.states) {
		return nil
	}
	return c.states[pos]
}

// Finished reports whether the position has moved past the last state.
func (c *Coordinator) Finished() bool {
	pos := c.Position()
	return pos >= 0 && pos >= len(c.states)
}

func (c *Coordinator) setStates(states []*State) {
	gen := c.generation.Inc()

	c.states = append([]*State(nil), states...)
	for i, s := range c.states {
		s.attach(c, Handle{coordinator: c, generation: gen, index: i})
	}
	c.position.Store(0)

	c.logger.Debug("Sequence set", "states", len(c.states), "generation", gen)

	c.installRoot()
}

func (c *Coordinator) installRoot() {
	if len(c.states) == 0 || c.window == nil {
		return
	}

	root := c.window.Root()
	if root == nil {
		c.logger.Debug("No window root; skipping root install")
		return
	}

	first := c.states[0].Screen()
	if first == nil {
		c.logger.Debug("First state has no screen; skipping root install")
		return
	}

	kind := TransitionRoot
	if nav, ok := root.(Navigator); ok {
		nav.SetScreens(first)
		kind = TransitionStack
	} else {
		c.window.SetRoot(first)
	}

	c.notify(Transition{Kind: kind, Index: 0, State: c.states[0], Screen: first})
}

func (c *Coordinator) advance() {
	next := int(c.position.Inc())
	if next < 0 || next >= len(c.states) {
		c.logger.Debug("Sequence complete", "position", next)
		return
	}

	state := c.states[next]
	screen := state.PrepareTransition()
	if screen == nil {
		c.logger.Debug("State has no screen; skipping transition", "position", next, "state", state.Name())
		return
	}

	var root any
	if c.window != nil {
		root = c.window.Root()
	}

	if nav, ok := root.(Navigator); ok {
		nav.Push(screen)
		c.notify(Transition{Kind: TransitionPush, Index: next, State: state, Screen: screen})
		return
	}

	host := root
	if next > 0 {
		host = c.states[next-1].Screen()
	}

	presenter, ok := host.(Presenter)
	if !ok {
		c.logger.Warn("Nothing to present from; skipping transition", "position", next, "state", state.Name())
		return
	}

	presenter.Present(screen)
	c.notify(Transition{Kind: TransitionPresent, Index: next, State: state, Screen: screen})
}

func (c *Coordinator) step(h Handle, name string) {
	c.dispatcher.Dispatch(func() {
		if h.generation != c.generation.Load() || h.index >= len(c.states) {
			c.logger.Debug("Dropping step from a replaced sequence", "step", name, "index", h.index)
			return
		}

		state := c.states[h.index]
		if !state.record(name) {
			return
		}

		c.logger.Debug("State completed", "index", h.index, "state", state.Name(), "steps", state.Count())

		if pos := c.Position(); pos != h.index {
			c.logger.Warn("State completed out of order", "index", h.index, "position", pos)
		}
		c.advance()
	})
}

func (c *Coordinator) notify(t Transition) {
	c.logger.Debug("Transition", "kind", t.Kind.String(), "index", t.Index, "state", t.State.Name())
	if c.onTransition != nil {
		c.onTransition(t)
	}
}
