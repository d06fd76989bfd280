// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilnworks/kiln/internal/doctor"
	"github.com/kilnworks/kiln/internal/telemetry/events"
)

func newDoctorCmd(sender events.Sender) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the host environment for required tooling",
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := 0

			for _, v := range defaultValidators() {
				result := v.Validate(cmd.Context())
				printResult(cmd, v, result)

				// Grouped validators fan out to their leaves inside Send.
				events.NewDoctorResultEvent(sender, v, result).Send()

				if result.Status != doctor.StatusPassed {
					problems++
				}
			}

			if problems > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\nDoctor found issues in %d categories.\n", problems)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "\nNo issues found.")
			}
			return nil
		},
	}
}

func defaultValidators() []doctor.Validator {
	return []doctor.Validator{
		doctor.NewGroup("Host tools",
			doctor.NewToolValidator("Git", "git"),
			doctor.NewToolValidator("Java runtime", "java"),
		),
		doctor.NewEnvVarValidator("Android toolchain", "ANDROID_HOME"),
	}
}

func printResult(cmd *cobra.Command, v doctor.Validator, result doctor.Result) {
	marker := color.GreenString("[✓]")
	switch result.Status {
	case doctor.StatusPassed:
	case doctor.StatusPartial, doctor.StatusNotAvailable:
		marker = color.YellowString("[!]")
	default:
		marker = color.RedString("[✗]")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s", marker, v.Title())
	if result.Message != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " (%s)", result.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout())
}
