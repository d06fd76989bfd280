// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package events

import "github.com/kilnworks/kiln/internal/telemetry/fields"

// HotEvent reports one hot reload or hot restart cycle.
//
// TargetPlatform, SdkName, Emulator and FullRestart are required and always
// reported; the remaining fields are optional and reported only when set.
type HotEvent struct {
	UsageEvent

	TargetPlatform string
	SdkName        string
	Emulator       bool
	FullRestart    bool

	Reason                  *string
	NullSafety              *bool
	FinalLibraryCount       *int64
	SyncedLibraryCount      *int64
	SyncedClassesCount      *int64
	SyncedProceduresCount   *int64
	SyncedBytes             *int64
	InvalidatedSourcesCount *int64
	TransferTimeMs          *int64
	OverallTimeMs           *int64
}

// HotEventOptions carries the optional HotEvent fields.
type HotEventOptions struct {
	Reason                  *string
	NullSafety              *bool
	FinalLibraryCount       *int64
	SyncedLibraryCount      *int64
	SyncedClassesCount      *int64
	SyncedProceduresCount   *int64
	SyncedBytes             *int64
	InvalidatedSourcesCount *int64
	TransferTimeMs          *int64
	OverallTimeMs           *int64
}

// NewHotEvent builds a hot event. kind is HotKindReload or HotKindRestart.
func NewHotEvent(
	sender Sender,
	kind string,
	targetPlatform string,
	sdkName string,
	emulator bool,
	fullRestart bool,
	opts HotEventOptions,
) *HotEvent {
	return &HotEvent{
		UsageEvent:              UsageEvent{Category: CategoryHot, Parameter: kind, sender: sender},
		TargetPlatform:          targetPlatform,
		SdkName:                 sdkName,
		Emulator:                emulator,
		FullRestart:             fullRestart,
		Reason:                  opts.Reason,
		NullSafety:              opts.NullSafety,
		FinalLibraryCount:       opts.FinalLibraryCount,
		SyncedLibraryCount:      opts.SyncedLibraryCount,
		SyncedClassesCount:      opts.SyncedClassesCount,
		SyncedProceduresCount:   opts.SyncedProceduresCount,
		SyncedBytes:             opts.SyncedBytes,
		InvalidatedSourcesCount: opts.InvalidatedSourcesCount,
		TransferTimeMs:          opts.TransferTimeMs,
		OverallTimeMs:           opts.OverallTimeMs,
	}
}

func (e *HotEvent) Send() {
	dims := fields.Compact(
		fields.StringVal(fields.HotEventTargetPlatform, e.TargetPlatform),
		fields.StringVal(fields.HotEventSdkName, e.SdkName),
		fields.BoolVal(fields.HotEventEmulator, e.Emulator),
		fields.BoolVal(fields.HotEventFullRestart, e.FullRestart),
		fields.String(fields.HotEventReason, e.Reason),
		fields.Bool(fields.NullSafety, e.NullSafety),
		fields.Int(fields.HotEventFinalLibraryCount, e.FinalLibraryCount),
		fields.Int(fields.HotEventSyncedLibraryCount, e.SyncedLibraryCount),
		fields.Int(fields.HotEventSyncedClassesCount, e.SyncedClassesCount),
		fields.Int(fields.HotEventSyncedProceduresCount, e.SyncedProceduresCount),
		fields.Int(fields.HotEventSyncedBytes, e.SyncedBytes),
		fields.Int(fields.HotEventInvalidatedSourcesCount, e.InvalidatedSourcesCount),
		fields.Int(fields.HotEventTransferTimeInMs, e.TransferTimeMs),
		fields.Int(fields.HotEventOverallTimeInMs, e.OverallTimeMs),
	)

	e.sender.SendEvent(e.Category, e.Parameter, SendOptions{
		Label:      e.Label,
		Value:      e.Value,
		Dimensions: dims,
	})
}
