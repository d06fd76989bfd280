// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilnworks/kiln/internal/telemetry/events"
)

const manifestFileName = "kiln.yaml"

func newPubCmd(sender events.Sender) *cobra.Command {
	pubCmd := &cobra.Command{
		Use:   "pub",
		Short: "Manage the project's package dependencies",
	}

	pubCmd.AddCommand(
		newPubSubCmd(sender, "get", "Fetch the project's dependencies"),
		newPubSubCmd(sender, "upgrade", "Upgrade dependencies to the latest allowed versions"),
	)

	return pubCmd
}

func newPubSubCmd(sender events.Sender, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := resolveDependencies(cmd)

			result := "success"
			if err != nil {
				result = "failure"
			}
			events.NewPubResultEvent(sender, use, result).Send()

			return err
		},
	}
}

func resolveDependencies(cmd *cobra.Command) error {
	if _, err := os.Stat(manifestFileName); err != nil {
		return fmt.Errorf("no %s manifest found in the current directory", manifestFileName)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Resolving dependencies...")
	return nil
}
