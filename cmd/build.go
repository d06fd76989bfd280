// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilnworks/kiln/internal/telemetry/events"
)

var buildArtifacts = map[string]bool{
	"apk":    true,
	"bundle": true,
	"web":    true,
}

func newBuildCmd(sender events.Sender) *cobra.Command {
	var settings string
	var release bool

	cmd := &cobra.Command{
		Use:   "build <artifact>",
		Short: "Build an application artifact (apk, bundle or web)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			mode := "debug"
			if release {
				mode = "release"
			}

			buildErr := runBuild(cmd, kind, mode)

			opts := events.BuildEventOptions{
				Command: ptr(fmt.Sprintf("build %s --%s", kind, mode)),
			}
			if settings != "" {
				opts.Settings = &settings
			}
			if buildErr != nil {
				opts.Error = ptr(buildErr.Error())
			}
			events.NewBuildEvent(sender, kind, opts).Send()

			return buildErr
		},
	}

	cmd.Flags().StringVar(&settings, "settings", "", "Extra settings passed to the build pipeline.")
	cmd.Flags().BoolVar(&release, "release", false, "Build in release mode.")

	return cmd
}

func runBuild(cmd *cobra.Command, kind, mode string) error {
	if !buildArtifacts[kind] {
		return fmt.Errorf("unknown build artifact %q", kind)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Building %s (%s)...\n", kind, mode)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
