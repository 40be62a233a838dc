// Package stepflow gates the move from one screen to the next on a fixed set
// of steps, and walks an ordered sequence of such screens forward.
//
// A State tracks the steps reported by one screen. It completes either after
// a number of steps or once a set of named steps has been seen. A Coordinator
// owns the sequence: it installs the first state's screen as the window root
// and, each time the current state completes, pushes (or presents) the next
// state's screen.
//
// # Basic Usage
//
//	coord := stepflow.NewCoordinator(window)
//
//	coord.SetStates(
//	    stepflow.NewStepState("viewDidAppear", stepflow.WithScreen(welcome)),
//	    stepflow.NewCountedState(2, stepflow.WithScreen(tutorial)),
//	    stepflow.NewNamedState([]string{"signedIn", "viewDidAppear"}, stepflow.WithScreen(login)),
//	)
//
// Screens receive a Handle through BindState and report progress with it:
//
//	func (w *WelcomeScreen) BindState(h stepflow.Handle) { w.state = h }
//
//	func (w *WelcomeScreen) OnShown() {
//	    w.state.StepAt(constants.StepViewDidAppear)
//	}
//
// # Dispatch
//
// Steps, sequence changes and transitions all run through the coordinator's
// Dispatcher, one at a time. The default Immediate dispatcher runs them on
// the caller. Hosts with a frame loop use a Queue and call Drain each frame.
//
// # Completion
//
// Each state signals completion once. Steps recorded afterwards are kept in
// the state's history but never advance the sequence again. Advancing past
// the last state does nothing.
package stepflow
