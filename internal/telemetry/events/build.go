// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package events

import "github.com/kilnworks/kiln/internal/telemetry/fields"

// BuildEvent reports one invocation of a build pipeline. kind identifies the
// artifact being produced, for example "apk" or "bundle".
type BuildEvent struct {
	UsageEvent

	Command  *string
	Settings *string
	Error    *string
}

// BuildEventOptions carries the optional BuildEvent fields.
type BuildEventOptions struct {
	Label    string
	Command  *string
	Settings *string
	Error    *string
}

func NewBuildEvent(sender Sender, kind string, opts BuildEventOptions) *BuildEvent {
	return &BuildEvent{
		UsageEvent: UsageEvent{
			Category:  CategoryBuild,
			Parameter: kind,
			Label:     opts.Label,
			sender:    sender,
		},
		Command:  opts.Command,
		Settings: opts.Settings,
		Error:    opts.Error,
	}
}

func (e *BuildEvent) Send() {
	dims := fields.Compact(
		fields.String(fields.BuildEventCommand, e.Command),
		fields.String(fields.BuildEventSettings, e.Settings),
		fields.String(fields.BuildEventError, e.Error),
	)

	e.sender.SendEvent(e.Category, e.Parameter, SendOptions{
		Label:      e.Label,
		Value:      e.Value,
		Dimensions: dims,
	})
}
