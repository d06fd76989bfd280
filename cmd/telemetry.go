// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilnworks/kiln/internal/telemetry/events"
)

// commandStatus is the stringified functional outcome of a command run.
type commandStatus string

const (
	statusSuccess commandStatus = "success"
	statusFailure commandStatus = "failure"
)

func (s commandStatus) String() string {
	return string(s)
}

// withUsage wraps every runnable command in the tree so completing it reports
// a CommandResultEvent for the full command path.
//
// Note: CommandPath is constructed from the Use member of each command up to
// the root. It contains no user input and is safe for usage emission.
func withUsage(sender events.Sender, proc events.ProcessInfo, cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)

			status := statusSuccess
			if err != nil {
				status = statusFailure
			}
			events.NewCommandResultEvent(sender, proc, c.CommandPath(), status).Send()

			return err
		}
	}

	for _, sub := range cmd.Commands() {
		withUsage(sender, proc, sub)
	}
}
