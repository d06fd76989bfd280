// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

// Package events defines the taxonomy of usage events emitted by kiln and the
// mapping of each event onto the generic analytics emission call.
//
// Events are immutable value objects: a caller constructs one with the fields
// it has, calls Send exactly once, and discards it. All optional fields are
// pointers; a nil field is omitted from the emission entirely.
package events

import "github.com/kilnworks/kiln/internal/telemetry/fields"

// Sender is the analytics collaborator every event hands its flattened form
// to. Implementations are fire-and-forget: they never surface errors back to
// event code, and must be safe for repeated calls from multiple events.
type Sender interface {
	SendEvent(category, parameter string, opts SendOptions)
}

// SendOptions carries the optional parts of an emission. A zero Label, nil
// Value or nil Dimensions each mean "absent".
type SendOptions struct {
	Label      string
	Value      *int64
	Dimensions fields.DimensionMap
}

// NopSender discards every emission. Used when collection is disabled.
type NopSender struct{}

func (NopSender) SendEvent(string, string, SendOptions) {}

// Event is a single usage occurrence ready to be reported.
type Event interface {
	Send()
}

// UsageEvent holds the fields common to every event in the taxonomy. Category
// and Parameter are always present; Label and Value are optional.
type UsageEvent struct {
	Category  string
	Parameter string
	Label     string
	Value     *int64

	sender Sender
}

// NewUsageEvent builds a plain event with no custom dimensions.
func NewUsageEvent(sender Sender, category, parameter string) *UsageEvent {
	return &UsageEvent{Category: category, Parameter: parameter, sender: sender}
}

// Send forwards the event fields verbatim with an empty dimension map.
// Variants carrying structured fields shadow this with their own mapping.
func (e *UsageEvent) Send() {
	e.sender.SendEvent(e.Category, e.Parameter, SendOptions{Label: e.Label, Value: e.Value})
}
