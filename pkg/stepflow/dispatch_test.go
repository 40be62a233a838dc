package stepflow_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmediateRunsNestedTasksAfterCurrent(t *testing.T) {
	d := stepflow.NewImmediate()
	var order []string

	d.Dispatch(func() {
		order = append(order, "outer:start")
		d.Dispatch(func() { order = append(order, "nested:1") })
		d.Dispatch(func() { order = append(order, "nested:2") })
		order = append(order, "outer:end")
	})

	assert.Equal(t, []string{"outer:start", "outer:end", "nested:1", "nested:2"}, order)
}

func TestImmediateRecoversAfterPanic(t *testing.T) {
	d := stepflow.NewImmediate()

	assert.Panics(t, func() {
		d.Dispatch(func() { panic("boom") })
	})

	ran := false
	d.Dispatch(func() { ran = true })
	assert.True(t, ran)
}

func TestImmediateRunsEveryTaskFromConcurrentCallers(t *testing.T) {
	const (
		rounds     = 2000
		goroutines = 8
		perCaller  = 4
	)

	for round := 0; round < rounds; round++ {
		d := stepflow.NewImmediate()
		var (
			mu  sync.Mutex
			ran int
			wg  sync.WaitGroup
		)

		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perCaller; j++ {
					d.Dispatch(func() {
						mu.Lock()
						ran++
						mu.Unlock()
					})
				}
			}()
		}
		wg.Wait()

		mu.Lock()
		got := ran
		mu.Unlock()
		require.Equal(t, goroutines*perCaller, got, "round %d", round)
	}
}

func TestCoordinatorAdvancesWithConcurrentSteps(t *testing.T) {
	const steps = 16

	for round := 0; round < 500; round++ {
		first, second := newScreen("first"), newScreen("second")
		coord := stepflow.NewCoordinator(&testWindow{root: &navRoot{}})
		coord.SetStates(
			stepflow.NewCountedState(steps, stepflow.WithScreen(first)),
			stepflow.NewStepState("done", stepflow.WithScreen(second)),
		)

		var wg sync.WaitGroup
		for s := 0; s < steps; s++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				first.handle.Step("")
			}()
		}
		wg.Wait()

		require.Equal(t, 1, coord.Position(), "round %d", round)
	}
}

func TestQueueDrainRunsInOrder(t *testing.T) {
	q := stepflow.NewQueue()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		q.Dispatch(func() { order = append(order, i) })
	}
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, 3, q.Drain())
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Equal(t, 0, q.Len())
}

func TestQueueDrainLeavesNewTasksForNextCall(t *testing.T) {
	q := stepflow.NewQueue()
	ran := 0
	q.Dispatch(func() {
		ran++
		q.Dispatch(func() { ran++ })
	})

	assert.Equal(t, 1, q.Drain())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, q.Drain())
	assert.Equal(t, 2, ran)
}

func TestQueueRunStopsOnCancel(t *testing.T) {
	q := stepflow.NewQueue()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	q.Dispatch(func() { close(done) })

	errCh := make(chan error, 1)
	go func() { errCh <- q.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queued task never ran")
	}

	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)
}

func TestQueueRejectsSecondRun(t *testing.T) {
	q := stepflow.NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	q.Dispatch(func() { close(started) })
	go func() { _ = q.Run(ctx) }()
	<-started

	assert.ErrorIs(t, q.Run(ctx), stepflow.ErrQueueRunning)
}
