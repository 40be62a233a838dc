package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepNamesRoundTrip(t *testing.T) {
	for _, s := range []Step{StepViewDidLoad, StepViewDidAppear} {
		parsed, ok := ParseStep(s.GetName())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}
}

func TestParseStepUnknown(t *testing.T) {
	s, ok := ParseStep("confirmed")
	assert.False(t, ok)
	assert.Equal(t, StepUnknown, s)
	assert.Equal(t, "unknown", s.String())
}

func TestIsDevMode(t *testing.T) {
	t.Setenv(EnvironmentEnvVar, Development)
	assert.True(t, IsDevMode())

	t.Setenv(EnvironmentEnvVar, "PROD")
	assert.False(t, IsDevMode())
}
