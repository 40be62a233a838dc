package stepflow

import "github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"

// Screen is anything the coordinator can show. A screen keeps the Handle it
// is given and reports its progress through it.
//
// Example:
//
//	type WelcomeScreen struct {
//	    state stepflow.Handle
//	}
//
//	func (w *WelcomeScreen) BindState(h stepflow.Handle) { w.state = h }
//
//	func (w *WelcomeScreen) OnShown() {
//	    w.state.StepAt(constants.StepViewDidAppear)
//	}
type Screen interface {
	BindState(h Handle)
}

// Window is the host application's top-level presentation surface.
type Window interface {
	// Root returns the currently visible root, or nil if there is none.
	Root() any
	// SetRoot replaces the visible root with screen.
	SetRoot(screen Screen)
}

// Navigator is implemented by roots that manage a push-style stack of screens.
type Navigator interface {
	// SetScreens replaces the managed stack.
	SetScreens(screens ...Screen)
	// Push shows screen on top of the stack.
	Push(screen Screen)
}

// Presenter is implemented by screens (or roots) that can present another
// screen modally over themselves.
type Presenter interface {
	Present(screen Screen)
}

// Handle is an opaque reference from a screen to its state. The zero Handle
// is unbound and drops every step reported through it.
type Handle struct {
	coordinator *Coordinator
	generation  uint64
	index       int
}

// Bound reports whether the handle refers to a state.
func (h Handle) Bound() bool {
	return h.coordinator != nil
}

// Index returns the position of the bound state in its sequence, or -1.
func (h Handle) Index() int {
	if !h.Bound() {
		return -1
	}
	return h.index
}

// Step reports a named step. An empty name records an anonymous step.
func (h Handle) Step(name string) {
	if !h.Bound() {
		return
	}
	h.coordinator.step(h, name)
}

// StepAt reports one of the predefined lifecycle steps.
func (h Handle) StepAt(step constants.Step) {
	h.Step(step.GetName())
}
