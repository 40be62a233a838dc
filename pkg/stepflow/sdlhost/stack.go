package sdlhost

import "github.com/BrandonKowalski/stepflow/pkg/stepflow"

// StackEntry is one screen shown by the host and how it got there. A modal
// entry is drawn over a dimmed copy of the entry below it.
type StackEntry struct {
	Screen stepflow.Screen
	Modal  bool
}

// Stack is the host's list of shown screens. Only the top one receives
// input. stepflow never navigates back, so entries are only ever
// pushed or replaced.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a screen on top.
func (s *Stack) Push(screen stepflow.Screen, modal bool) {
	s.entries = append(s.entries, StackEntry{Screen: screen, Modal: modal})
}

// Reset replaces every entry with screens, none of them modal.
func (s *Stack) Reset(screens ...stepflow.Screen) {
	s.entries = s.entries[:0]
	for _, screen := range screens {
		s.Push(screen, false)
	}
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Below returns the entry under the top one, or nil if there is none.
func (s *Stack) Below() *StackEntry {
	if len(s.entries) < 2 {
		return nil
	}
	return &s.entries[len(s.entries)-2]
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
