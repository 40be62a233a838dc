// Package commands implements the stepflow CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/stepflow/cmd/stepflow/ui"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	debug   bool
	logPath string
	locale  string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "stepflow",
		Short:         "Validate and preview linear screen flows",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			stepflow.Init(stepflow.Options{
				LogPath:  flags.logPath,
				LogLevel: "warn",
				Debug:    flags.debug,
			})
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Log coordinator decisions")
	root.PersistentFlags().StringVar(&flags.logPath, "log-path", "", "Also write logs to this file")
	root.PersistentFlags().StringVar(&flags.locale, "locale", "", "Language for labels (e.g. en, fr)")

	root.AddCommand(newValidateCmd(flags))
	root.AddCommand(newRunCmd(flags))

	return root
}

// Execute runs the CLI and prints any error.
func Execute() error {
	err := NewRootCmd().Execute()
	stepflow.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
	}
	return err
}
