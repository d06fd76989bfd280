// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

// Package cmd wires the kiln command tree and its usage reporting.
package cmd

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kilnworks/kiln/internal"
	"github.com/kilnworks/kiln/internal/telemetry"
	"github.com/kilnworks/kiln/internal/telemetry/events"
)

// NewRootCmd builds the command tree. The usage sender and process-info
// collaborators are passed in explicitly; tests inject fakes here.
func NewRootCmd(sender events.Sender, proc events.ProcessInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kiln",
		Short:         "Kiln - build, run and diagnose kiln applications",
		Version:       internal.VersionNumber(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newBuildCmd(sender),
		newDoctorCmd(sender),
		newPubCmd(sender),
		newConfigCmd(sender),
	)

	withUsage(sender, proc, rootCmd)

	return rootCmd
}

// Execute runs the CLI and returns the process exit code. Usage collection is
// wired here: a real reporter when the user has it enabled, a no-op sender
// otherwise.
func Execute(ctx context.Context, args []string) int {
	var sender events.Sender = events.NopSender{}
	var reporter *telemetry.UsageReporter

	settings, err := telemetry.LoadSettings()
	if err != nil {
		log.Printf("telemetry: failed to load settings: %v", err)
	} else if settings.CollectionEnabled() {
		attrs := append(telemetry.CommonAttributes(), attribute.String("client.id", settings.ClientId))
		reporter = telemetry.NewUsageReporter(telemetry.NewClient(), telemetry.UsageReporterOptions{
			CommonAttributes:  attrs,
			SessionDimensions: telemetry.SessionDimensions(ctx),
		})
		sender = reporter
	}

	rootCmd := NewRootCmd(sender, telemetry.CurrentProcess())
	rootCmd.SetArgs(args)
	runErr := rootCmd.ExecuteContext(ctx)

	if reporter != nil {
		reporter.Close(2 * time.Second)
	}

	if runErr != nil {
		return 1
	}
	return 0
}
