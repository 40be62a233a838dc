package commands

import (
	"fmt"
	"strconv"

	"github.com/BrandonKowalski/stepflow/cmd/stepflow/ui"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/locale"
	"github.com/spf13/cobra"
)

func newValidateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <flow.toml>",
		Short: "Check a flow file and list its states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := stepflow.LoadFlow(args[0])
			if err != nil {
				return err
			}

			l := locale.New(flags.locale)
			rows := make([][]string, 0, len(flow.States))
			for i, entry := range flow.States {
				rows = append(rows, []string{
					strconv.Itoa(i),
					entry.Label(),
					entry.Screen,
					criterion(l, entry),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Table([]string{"#", "State", "Screen", "Completes on"}, rows))
			fmt.Fprintln(out, ui.SuccessMsg("%s: %d states", args[0], len(flow.States)))
			return nil
		},
	}
}

func criterion(l *locale.Localizer, entry stepflow.StateSpec) string {
	if len(entry.Steps) > 0 {
		return l.CriterionSteps(entry.Steps)
	}
	return l.CriterionCount(entry.Target())
}
