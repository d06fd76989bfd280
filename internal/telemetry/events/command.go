// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package events

import "log"

// CommandResult describes the functional outcome of a completed command
// invocation.
type CommandResult interface {
	String() string
}

// ProcessInfo exposes peak memory usage of the running process. The query is
// fallible: memory inspection is unavailable in some sandboxes and platforms.
type ProcessInfo interface {
	MaxRSS() (int64, error)
}

// CommandResultEvent reports both the functional outcome of a top-level
// command and, best effort, its peak memory usage. The two emissions are
// independent: a failing memory query never suppresses the result event.
type CommandResultEvent struct {
	UsageEvent

	result CommandResult
	proc   ProcessInfo
}

// NewCommandResultEvent builds a command-result event. commandPath and result
// identify the invocation and must be set; passing an empty path or nil
// result is a caller bug and panics.
func NewCommandResultEvent(sender Sender, proc ProcessInfo, commandPath string, result CommandResult) *CommandResultEvent {
	if commandPath == "" {
		panic("events: command path must not be empty")
	}
	if result == nil {
		panic("events: command result must not be nil")
	}

	return &CommandResultEvent{
		UsageEvent: UsageEvent{
			Category:  CategoryCommandResult,
			Parameter: commandPath,
			Label:     result.String(),
			sender:    sender,
		},
		result: result,
		proc:   proc,
	}
}

func (e *CommandResultEvent) Send() {
	// The result event is unconditional and must go out before the memory
	// query is attempted.
	e.sender.SendEvent(CategoryCommandResult, e.Parameter, SendOptions{Label: e.Label})

	if e.proc == nil {
		log.Printf("telemetry: process info unavailable, skipping max rss event")
		return
	}

	maxRss, err := e.proc.MaxRSS()
	if err != nil {
		log.Printf("telemetry: unable to read process max rss: %v", err)
		return
	}

	e.sender.SendEvent(CategoryCommandMaxRss, e.Parameter, SendOptions{
		Label: e.Label,
		Value: &maxRss,
	})
}
