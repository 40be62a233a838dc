package commands

import (
	"context"
	"errors"
	"os/signal"
	"slices"
	"syscall"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/sdlhost"
	"github.com/spf13/cobra"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var (
		fontPath   string
		navigation bool
		light      bool
	)

	cmd := &cobra.Command{
		Use:   "run <flow.toml>",
		Short: "Walk a flow in an SDL window using generic cards",
		Long: `Walk a flow in an SDL window. Every screen in the flow is drawn as a card
with the state's title and body. Cards report viewDidLoad when shown,
viewDidAppear after their first frame and "confirmed" when A or Enter is pressed.
Those first two steps need no input, so a counted state with a count below 3
advances on its own one frame after it appears.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := stepflow.LoadFlow(args[0])
			if err != nil {
				return err
			}

			theme := sdlhost.DarkTheme(fontPath)
			if light {
				theme = sdlhost.LightTheme(fontPath)
			}

			host, err := sdlhost.New(sdlhost.Options{
				Title:      "stepflow",
				Theme:      theme,
				Locale:     flags.locale,
				Navigation: navigation,
			})
			if err != nil {
				return err
			}
			defer host.Close()

			states, err := flow.Build(cardRegistry(host, flow))
			if err != nil {
				return err
			}
			for i, entry := range flow.States {
				card := states[i].Screen().(*sdlhost.Card)
				card.Title = entry.Title
				if card.Title == "" {
					card.Title = entry.Label()
				}
				card.Body = entry.Body
				card.Hint = waitsForConfirm(entry)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stepflow.GetLogger().Info("Starting flow", "file", args[0], "states", len(states))
			host.Coordinator().SetStates(states...)

			if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fontPath, "font", sdlhost.DefaultFontPath, "TTF font used for all text")
	cmd.Flags().BoolVar(&navigation, "navigation", false, "Push screens instead of presenting them modally")
	cmd.Flags().BoolVar(&light, "light", false, "Use the light theme")

	return cmd
}

// waitsForConfirm reports whether a card showing entry stays up until the
// user presses confirm.
func waitsForConfirm(entry stepflow.StateSpec) bool {
	if len(entry.Steps) > 0 {
		return slices.Contains(entry.Steps, sdlhost.StepConfirmed)
	}
	return entry.Target() > cardAutoSteps
}

// cardAutoSteps is how many steps a card reports without input.
const cardAutoSteps = 2

// cardRegistry maps every screen id in flow to a Card factory.
func cardRegistry(host *sdlhost.Host, flow *stepflow.Flow) *stepflow.Registry {
	reg := stepflow.NewRegistry()
	for _, entry := range flow.States {
		if reg.Has(entry.Screen) {
			continue
		}
		reg.Register(entry.Screen, func() stepflow.Screen {
			return sdlhost.NewCard(host, "", "")
		})
	}
	return reg
}
