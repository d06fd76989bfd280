// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilnworks/kiln/internal/telemetry"
	"github.com/kilnworks/kiln/internal/telemetry/events"
)

func newConfigCmd(sender events.Sender) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage kiln configuration",
	}

	configCmd.AddCommand(newConfigAnalyticsCmd(sender))

	return configCmd
}

func newConfigAnalyticsCmd(sender events.Sender) *cobra.Command {
	var enable, disable bool

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show or change anonymous usage reporting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if enable && disable {
				return errors.New("--enable and --disable are mutually exclusive")
			}

			settings, err := telemetry.LoadSettings()
			if err != nil {
				return err
			}

			if !enable && !disable {
				state := "disabled"
				if settings.CollectionEnabled() {
					state = "enabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Anonymous usage reporting is %s.\n", state)
				return nil
			}

			// Report the toggle before collection is turned off, so disable
			// events are still observable.
			events.NewAnalyticsConfigEvent(sender, enable).Send()

			settings.SetEnabled(enable)
			if err := settings.Save(); err != nil {
				return err
			}

			state := "disabled"
			if enable {
				state = "enabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Anonymous usage reporting is now %s.\n", state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&enable, "enable", false, "Turn usage reporting on.")
	cmd.Flags().BoolVar(&disable, "disable", false, "Turn usage reporting off.")

	return cmd
}
