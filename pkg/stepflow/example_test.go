package stepflow_test

import (
	"fmt"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"
)

// Screens hold the handle they are bound to and report steps through it.
type exampleScreen struct {
	title string
	state stepflow.Handle
}

func (s *exampleScreen) BindState(h stepflow.Handle) { s.state = h }

// A push-style root, like a navigation controller.
type exampleNav struct{}

func (exampleNav) SetScreens(screens ...stepflow.Screen) {
	fmt.Printf("Root: %s\n", screens[0].(*exampleScreen).title)
}

func (exampleNav) Push(screen stepflow.Screen) {
	fmt.Printf("Push: %s\n", screen.(*exampleScreen).title)
}

type exampleWindow struct{ root any }

func (w *exampleWindow) Root() any                      { return w.root }
func (w *exampleWindow) SetRoot(screen stepflow.Screen) { w.root = screen }

// Example walks a two-screen sequence: a splash that waits for two steps and
// a welcome screen that waits for a named one.
func Example() {
	coord := stepflow.NewCoordinator(&exampleWindow{root: exampleNav{}})

	splash := &exampleScreen{title: "Splash"}
	welcome := &exampleScreen{title: "Welcome"}

	coord.SetStates(
		stepflow.NewCountedState(2, stepflow.WithScreen(splash)),
		stepflow.NewStepState("done", stepflow.WithScreen(welcome)),
	)

	splash.state.StepAt(constants.StepViewDidLoad)
	splash.state.StepAt(constants.StepViewDidAppear)

	welcome.state.Step("done")
	fmt.Printf("Finished: %v\n", coord.Finished())

	// Output:
	// Root: Splash
	// Push: Welcome
	// Finished: true
}

// Example_namedSteps shows that named steps may arrive in any order and
// repeat, and that the state advances only once.
func Example_namedSteps() {
	state := stepflow.NewNamedState([]string{"a", "b"}, stepflow.OnStep(func(name string) {
		fmt.Printf("step %s\n", name)
	}))

	coord := stepflow.NewCoordinator(nil, stepflow.OnTransition(func(t stepflow.Transition) {
		fmt.Printf("transition to %d\n", t.Index)
	}))
	coord.SetStates(state, stepflow.NewCountedState(1))

	state.RecordStep("a")
	state.RecordStep("a")
	state.RecordStep("b")
	state.RecordStep("b")

	fmt.Printf("position %d\n", coord.Position())

	// Output:
	// step a
	// step a
	// step b
	// step b
	// position 1
}
