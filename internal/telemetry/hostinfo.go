// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/kilnworks/kiln/internal/telemetry/fields"
)

// Channel identifies the release channel of this build. Overridden at build
// time via ldflags.
var Channel = "dev"

// SessionDimensions builds the session-level dimensions attached to every
// usage event of this process.
func SessionDimensions(ctx context.Context) fields.DimensionMap {
	return fields.Compact(
		fields.StringVal(fields.SessionHostOsDetails, hostOsDetails(ctx)),
		fields.StringVal(fields.SessionChannelName, Channel),
		fields.BoolVal(fields.CommandHasTerminal, hasTerminal()),
	)
}

// hostOsDetails returns a readable platform description, falling back to the
// bare GOOS when host inspection fails.
func hostOsDetails(ctx context.Context) string {
	info, err := host.InfoWithContext(ctx)
	if err != nil || info == nil {
		return runtime.GOOS
	}
	return fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
}

func hasTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
