// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

// Package fields defines the closed registry of custom dimensions attached to
// usage events, and helpers for building dimension maps from optional values.
package fields

import "strconv"

// Dimension is one member of the custom-dimension registry.
//
// Each member is bound to a stable numeric index that forms its wire key.
// The registry is append-only: indexes are never reused or renumbered, since
// the analytics backend keys historical data on them.
type Dimension struct {
	name  string
	index int
}

// Name returns the readable dimension name, used in logs and tests.
func (d Dimension) Name() string {
	return d.name
}

// WireKey returns the stable identifier the dimension is reported under.
func (d Dimension) WireKey() string {
	return "cd" + strconv.Itoa(d.index)
}

func (d Dimension) String() string {
	return d.name
}

// Session-level dimensions, attached by the reporter to every event.
var (
	SessionHostOsDetails = Dimension{"sessionHostOsDetails", 1}
	SessionChannelName   = Dimension{"sessionChannelName", 2}
	CommandHasTerminal   = Dimension{"commandHasTerminal", 3}
)

// Hot reload/restart event dimensions.
var (
	HotEventTargetPlatform          = Dimension{"hotEventTargetPlatform", 4}
	HotEventSdkName                 = Dimension{"hotEventSdkName", 5}
	HotEventEmulator                = Dimension{"hotEventEmulator", 6}
	HotEventFullRestart             = Dimension{"hotEventFullRestart", 7}
	HotEventReason                  = Dimension{"hotEventReason", 8}
	HotEventFinalLibraryCount       = Dimension{"hotEventFinalLibraryCount", 9}
	HotEventSyncedLibraryCount      = Dimension{"hotEventSyncedLibraryCount", 10}
	HotEventSyncedClassesCount      = Dimension{"hotEventSyncedClassesCount", 11}
	HotEventSyncedProceduresCount   = Dimension{"hotEventSyncedProceduresCount", 12}
	HotEventSyncedBytes             = Dimension{"hotEventSyncedBytes", 13}
	HotEventInvalidatedSourcesCount = Dimension{"hotEventInvalidatedSourcesCount", 14}
	HotEventTransferTimeInMs        = Dimension{"hotEventTransferTimeInMs", 15}
	HotEventOverallTimeInMs         = Dimension{"hotEventOverallTimeInMs", 16}
)

// Build event dimensions.
var (
	BuildEventCommand  = Dimension{"buildEventCommand", 17}
	BuildEventSettings = Dimension{"buildEventSettings", 18}
	BuildEventError    = Dimension{"buildEventError", 19}
)

// Sound null-safety dimensions.
var (
	NullSafety            = Dimension{"nullSafety", 20}
	NullSafetyRuntimeMode = Dimension{"nullSafetyRuntimeMode", 21}
)
