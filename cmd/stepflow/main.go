package main

import (
	"os"
	"runtime"

	"github.com/BrandonKowalski/stepflow/cmd/stepflow/commands"
)

func init() {
	// SDL must be driven from the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
