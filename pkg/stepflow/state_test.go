package stepflow_test

import (
	"testing"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
	"github.com/stretchr/testify/assert"
)

func TestCountedStateCompletesAtTarget(t *testing.T) {
	s := stepflow.NewCountedState(3)

	s.RecordStep("")
	s.RecordStep("named")
	assert.False(t, s.Completed())

	s.RecordStep("")
	assert.True(t, s.Completed())
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []string{"named"}, s.Steps())
}

func TestCountedStateDefaultsToOneStep(t *testing.T) {
	for _, target := range []int{0, -4, 1} {
		s := stepflow.NewCountedState(target)
		assert.Equal(t, 1, s.Target())

		s.RecordStep("")
		assert.True(t, s.Completed(), "target %d", target)
	}
}

func TestNamedStateIgnoresOrderAndDuplicates(t *testing.T) {
	s := stepflow.NewNamedState([]string{"a", "b", "c"})

	s.RecordStep("c")
	s.RecordStep("c")
	s.RecordStep("a")
	s.RecordStep("x")
	assert.False(t, s.Completed())

	done, total := s.Progress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 3, total)

	s.RecordStep("b")
	assert.True(t, s.Completed())
	assert.Equal(t, []string{"c", "c", "a", "x", "b"}, s.Steps())
}

func TestNamedStateAnonymousStepsDontCount(t *testing.T) {
	s := stepflow.NewStepState("done")

	s.RecordStep("")
	s.RecordStep("")
	assert.False(t, s.Completed())
	assert.Equal(t, 2, s.Count())

	s.RecordStep("done")
	assert.True(t, s.Completed())
}

func TestEmptyNamedStateCompletesOnFirstStep(t *testing.T) {
	s := stepflow.NewNamedState(nil)
	assert.NotNil(t, s.Required())
	assert.Empty(t, s.Required())

	s.RecordStep("")
	assert.True(t, s.Completed())
}

func TestStateKeepsRecordingAfterCompletion(t *testing.T) {
	var seen []string
	s := stepflow.NewStepState("done", stepflow.OnStep(func(name string) {
		seen = append(seen, name)
	}))

	s.RecordStep("done")
	s.RecordStep("done")
	s.RecordStep("")

	assert.True(t, s.Completed())
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []string{"done", "done", ""}, seen)
}

func TestProgressCountedCapsAtTarget(t *testing.T) {
	s := stepflow.NewCountedState(2)
	for i := 0; i < 5; i++ {
		s.RecordStep("")
	}

	done, total := s.Progress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 2, total)
}

func TestProgressNamedCountsDistinctRequired(t *testing.T) {
	s := stepflow.NewNamedState([]string{"a", "a", "b"})
	s.RecordStep("a")

	done, total := s.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)
}

func TestNamedStateCopiesRequiredSteps(t *testing.T) {
	required := []string{"a", "b"}
	s := stepflow.NewNamedState(required)
	required[0] = "z"

	assert.Equal(t, []string{"a", "b"}, s.Required())
	assert.Zero(t, s.Target())
}

func TestPrepareTransitionRunsHook(t *testing.T) {
	late := newScreen("late")
	s := stepflow.NewCountedState(1, stepflow.WithName("lazy"), stepflow.BeforeTransition(func(s *stepflow.State) {
		s.Bind(late)
	}))

	assert.Nil(t, s.Screen())
	assert.Equal(t, late, s.PrepareTransition())
	assert.Equal(t, "lazy", s.Name())
}

func TestBindBeforeAttachDefersHandle(t *testing.T) {
	screen := newScreen("first")
	s := stepflow.NewCountedState(1)
	s.Bind(screen)

	assert.Equal(t, 0, screen.binds)
	assert.False(t, screen.handle.Bound())
	assert.Equal(t, -1, screen.handle.Index())
}
