package stepflow_test

import (
	"testing"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryInstantiatesFreshScreens(t *testing.T) {
	reg := stepflow.NewRegistry().
		Register("welcome", func() stepflow.Screen { return newScreen("welcome") })

	a, err := reg.Instantiate("welcome")
	require.NoError(t, err)
	b, err := reg.Instantiate("welcome")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.True(t, reg.Has("welcome"))
	assert.Equal(t, []string{"welcome"}, reg.IDs())
}

func TestRegistryUnknownScreen(t *testing.T) {
	_, err := stepflow.NewRegistry().Instantiate("missing")
	assert.True(t, stepflow.IsUnknownScreen(err))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestRegistryNilFactoryResult(t *testing.T) {
	reg := stepflow.NewRegistry().Register("broken", func() stepflow.Screen { return nil })

	_, err := reg.Instantiate("broken")
	assert.ErrorIs(t, err, stepflow.ErrNilScreen)
}
