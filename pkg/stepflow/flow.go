package stepflow

import (
	"errors"
	"fmt"
	"os"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"
	"github.com/BurntSushi/toml"
)

// Flow is a sequence of states described in a TOML file.
//
//	[[state]]
//	name = "welcome"
//	screen = "welcome"
//	steps = ["viewDidAppear", "confirmed"]
//
//	[[state]]
//	screen = "tutorial"
//	count = 2
type Flow struct {
	States []StateSpec `toml:"state"`
}

// StateSpec describes one state of a Flow. Set either Steps or Count; an entry
// with neither waits for a single step. Count is a pointer so that an explicit
// count next to steps is rejected even when it is 0. Title and Body are passed
// through for hosts that draw generic screens.
type StateSpec struct {
	Name   string   `toml:"name"`
	Screen string   `toml:"screen"`
	Steps  []string `toml:"steps"`
	Count  *int     `toml:"count"`
	Title  string   `toml:"title"`
	Body   string   `toml:"body"`
}

// Criterion describes the completion condition in words, e.g. "count 2" or
// "steps [viewDidAppear confirmed]".
func (s StateSpec) Criterion() string {
	if len(s.Steps) > 0 {
		return fmt.Sprintf("steps %v", s.Steps)
	}
	return fmt.Sprintf("count %d", s.Target())
}

// Target returns the step count a counted state waits for. A missing or
// zero count means 1.
func (s StateSpec) Target() int {
	if s.Count == nil {
		return constants.DefaultTargetCount
	}
	return max(*s.Count, constants.DefaultTargetCount)
}

// Label returns the state name, falling back to its screen id.
func (s StateSpec) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Screen
}

// LoadFlow reads and validates a flow file.
func LoadFlow(path string) (*Flow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FlowError{State: -1, Op: "read", Err: err}
	}
	return ParseFlow(data)
}

// ParseFlow decodes and validates a flow definition.
func ParseFlow(data []byte) (*Flow, error) {
	var flow Flow
	md, err := toml.Decode(string(data), &flow)
	if err != nil {
		return nil, &FlowError{State: -1, Op: "decode", Err: err}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &FlowError{State: -1, Op: "decode", Err: fmt.Errorf("unknown key %q", undecoded[0].String())}
	}

	if err := flow.Validate(); err != nil {
		return nil, err
	}
	return &flow, nil
}

// Validate checks that the flow has states and that each uses exactly one
// completion criterion.
func (f *Flow) Validate() error {
	if len(f.States) == 0 {
		return &FlowError{State: -1, Op: "validate", Err: ErrEmptyFlow}
	}

	for i, entry := range f.States {
		switch {
		case entry.Screen == "":
			return &FlowError{State: i, Op: "validate", Err: errors.New("missing screen")}
		case len(entry.Steps) > 0 && entry.Count != nil:
			return &FlowError{State: i, Op: "validate", Err: ErrAmbiguousCriterion}
		case entry.Count != nil && *entry.Count < 0:
			return &FlowError{State: i, Op: "validate", Err: fmt.Errorf("negative count %d", *entry.Count)}
		}
	}
	return nil
}

// Build instantiates a screen for every state from reg and returns the
// states in flow order, ready for Coordinator.SetStates. Extra options are
// applied to every state.
func (f *Flow) Build(reg *Registry, opts ...StateOption) ([]*State, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	states := make([]*State, 0, len(f.States))
	for i, entry := range f.States {
		screen, err := reg.Instantiate(entry.Screen)
		if err != nil {
			return nil, &FlowError{State: i, Op: "build", Err: err}
		}

		stateOpts := append([]StateOption{WithName(entry.Label()), WithScreen(screen)}, opts...)
		if len(entry.Steps) > 0 {
			states = append(states, NewNamedState(entry.Steps, stateOpts...))
		} else {
			states = append(states, NewCountedState(entry.Target(), stateOpts...))
		}
	}
	return states, nil
}
