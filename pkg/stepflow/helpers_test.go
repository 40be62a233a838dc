package stepflow_test

import (
	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
)

// testScreen records its handle and anything presented over it.
type testScreen struct {
	id        string
	handle    stepflow.Handle
	binds     int
	presented []stepflow.Screen
}

func newScreen(id string) *testScreen {
	return &testScreen{id: id}
}

func (s *testScreen) BindState(h stepflow.Handle) {
	s.handle = h
	s.binds++
}

func (s *testScreen) Present(screen stepflow.Screen) {
	s.presented = append(s.presented, screen)
}

// plainScreen can't present anything.
type plainScreen struct {
	handle stepflow.Handle
}

func (s *plainScreen) BindState(h stepflow.Handle) {
	s.handle = h
}

// navRoot is a push-style root.
type navRoot struct {
	stack  []stepflow.Screen
	pushes int
	onPush func(screen stepflow.Screen)
}

func (n *navRoot) SetScreens(screens ...stepflow.Screen) {
	n.stack = append([]stepflow.Screen(nil), screens...)
}

func (n *navRoot) Push(screen stepflow.Screen) {
	n.stack = append(n.stack, screen)
	n.pushes++
	if n.onPush != nil {
		n.onPush(screen)
	}
}

func (n *navRoot) top() stepflow.Screen {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// testWindow holds a root that is either a navRoot or a screen.
type testWindow struct {
	root     any
	setRoots int
}

func (w *testWindow) Root() any {
	return w.root
}

func (w *testWindow) SetRoot(screen stepflow.Screen) {
	w.root = screen
	w.setRoots++
}

func stepN(h stepflow.Handle, name string, n int) {
	for i := 0; i < n; i++ {
		h.Step(name)
	}
}
