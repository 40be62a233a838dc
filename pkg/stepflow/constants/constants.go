// Package constants defines shared constants, types, and configuration values
// used throughout stepflow.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by stepflow and its hosts.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LogLevelEnvVar     = "STEPFLOW_LOG_LEVEL"
	LocaleEnvVar       = "STEPFLOW_LOCALE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Step names a lifecycle point a screen reports to its state.
type Step int

const (
	StepUnknown       Step = iota
	StepViewDidLoad        // Screen content was built
	StepViewDidAppear      // Screen is fully visible
)

func (s Step) GetName() string {
	switch s {
	case StepViewDidLoad:
		return "viewDidLoad"
	case StepViewDidAppear:
		return "viewDidAppear"
	default:
		return "unknown"
	}
}

func (s Step) String() string {
	return s.GetName()
}

// ParseStep maps a step name back to its Step. Names outside the closed set
// return StepUnknown and false.
func ParseStep(name string) (Step, bool) {
	switch name {
	case "viewDidLoad":
		return StepViewDidLoad, true
	case "viewDidAppear":
		return StepViewDidAppear, true
	default:
		return StepUnknown, false
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Defaults.
const (
	DefaultTargetCount = 1                     // Steps a counted state waits for when none is given
	DefaultFrameDelay  = 16 * time.Millisecond // Frame pacing when the renderer has no VSync
	DefaultInputDelay  = 20 * time.Millisecond // Debounce delay between input events
	DefaultQueueSize   = 64                    // Initial capacity of a Queue's task list
)
