package stepflow

import (
	"fmt"
	"slices"
)

// ScreenFactory builds a fresh screen.
type ScreenFactory func() Screen

// Registry maps screen identifiers to factories, so a flow can be described
// by name (for example in a flow file) and instantiated at startup.
//
// Example:
//
//	reg := stepflow.NewRegistry().
//	    Register("welcome", func() stepflow.Screen { return &WelcomeScreen{} }).
//	    Register("tutorial", func() stepflow.Screen { return &TutorialScreen{} })
type Registry struct {
	factories map[string]ScreenFactory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]ScreenFactory),
	}
}

// Register adds a screen factory under id, replacing any previous one.
func (r *Registry) Register(id string, fn ScreenFactory) *Registry {
	r.factories[id] = fn
	return r
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.factories[id]
	return ok
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Instantiate builds the screen registered under id.
func (r *Registry) Instantiate(id string) (Screen, error) {
	fn, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: screen %q: %w", id, ErrUnknownScreen)
	}

	screen := fn()
	if screen == nil {
		return nil, fmt.Errorf("registry: screen %q: %w", id, ErrNilScreen)
	}
	return screen, nil
}
