// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilnworks/kiln/internal/telemetry/fields"
)

type recordedEvent struct {
	category  string
	parameter string
	opts      SendOptions
}

type recordingSender struct {
	sent []recordedEvent
}

func (r *recordingSender) SendEvent(category, parameter string, opts SendOptions) {
	r.sent = append(r.sent, recordedEvent{category, parameter, opts})
}

func ptr[T any](v T) *T {
	return &v
}

func TestUsageEventBaseSend(t *testing.T) {
	sender := &recordingSender{}

	event := NewUsageEvent(sender, "hot", "restart")
	event.Send()
	// Re-sending re-emits: the event itself never mutates.
	event.Send()

	require.Len(t, sender.sent, 2)
	for _, got := range sender.sent {
		assert.Equal(t, "hot", got.category)
		assert.Equal(t, "restart", got.parameter)
		assert.Empty(t, got.opts.Label)
		assert.Nil(t, got.opts.Value)
		assert.Nil(t, got.opts.Dimensions)
	}
}

func TestHotEventDimensions(t *testing.T) {
	sender := &recordingSender{}

	NewHotEvent(sender, HotKindReload, "android", "30", false, false, HotEventOptions{
		NullSafety:         ptr(true),
		SyncedLibraryCount: ptr(int64(3)),
	}).Send()

	require.Len(t, sender.sent, 1)
	got := sender.sent[0]
	assert.Equal(t, CategoryHot, got.category)
	assert.Equal(t, "reload", got.parameter)
	assert.Equal(t, fields.DimensionMap{
		fields.HotEventTargetPlatform:     "android",
		fields.HotEventSdkName:            "30",
		fields.HotEventEmulator:           "false",
		fields.HotEventFullRestart:        "false",
		fields.NullSafety:                 "true",
		fields.HotEventSyncedLibraryCount: "3",
	}, got.opts.Dimensions)
}

func TestHotEventOptionalFieldPresence(t *testing.T) {
	full := HotEventOptions{
		Reason:                  ptr("save"),
		NullSafety:              ptr(true),
		FinalLibraryCount:       ptr(int64(1)),
		SyncedLibraryCount:      ptr(int64(2)),
		SyncedClassesCount:      ptr(int64(3)),
		SyncedProceduresCount:   ptr(int64(4)),
		SyncedBytes:             ptr(int64(5)),
		InvalidatedSourcesCount: ptr(int64(6)),
		TransferTimeMs:          ptr(int64(7)),
		OverallTimeMs:           ptr(int64(8)),
	}

	tests := []struct {
		name   string
		clear  func(*HotEventOptions)
		absent fields.Dimension
	}{
		{"Reason", func(o *HotEventOptions) { o.Reason = nil }, fields.HotEventReason},
		{"NullSafety", func(o *HotEventOptions) { o.NullSafety = nil }, fields.NullSafety},
		{"FinalLibraryCount", func(o *HotEventOptions) { o.FinalLibraryCount = nil }, fields.HotEventFinalLibraryCount},
		{"SyncedBytes", func(o *HotEventOptions) { o.SyncedBytes = nil }, fields.HotEventSyncedBytes},
		{"OverallTimeMs", func(o *HotEventOptions) { o.OverallTimeMs = nil }, fields.HotEventOverallTimeInMs},
	}

	baseline := &recordingSender{}
	NewHotEvent(baseline, HotKindRestart, "ios", "17", true, true, full).Send()
	require.Len(t, baseline.sent, 1)
	baselineDims := baseline.sent[0].opts.Dimensions
	require.Len(t, baselineDims, 14)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := full
			tt.clear(&opts)

			sender := &recordingSender{}
			NewHotEvent(sender, HotKindRestart, "ios", "17", true, true, opts).Send()

			require.Len(t, sender.sent, 1)
			dims := sender.sent[0].opts.Dimensions

			// Exactly one key disappears, all others are untouched.
			assert.NotContains(t, dims, tt.absent)
			assert.Len(t, dims, len(baselineDims)-1)
			for dim, val := range dims {
				assert.Equal(t, baselineDims[dim], val)
			}
		})
	}
}

func TestBuildEventDimensions(t *testing.T) {
	tests := []struct {
		name string
		opts BuildEventOptions
		want fields.DimensionMap
	}{
		{
			"AllFields",
			BuildEventOptions{
				Command:  ptr("build apk --release"),
				Settings: ptr("target-abi=arm64"),
				Error:    ptr("tool exited with code 1"),
			},
			fields.DimensionMap{
				fields.BuildEventCommand:  "build apk --release",
				fields.BuildEventSettings: "target-abi=arm64",
				fields.BuildEventError:    "tool exited with code 1",
			},
		},
		{
			"CommandOnly",
			BuildEventOptions{Command: ptr("build web --debug")},
			fields.DimensionMap{fields.BuildEventCommand: "build web --debug"},
		},
		{
			"NoFields",
			BuildEventOptions{},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{}
			NewBuildEvent(sender, "apk", tt.opts).Send()

			require.Len(t, sender.sent, 1)
			assert.Equal(t, CategoryBuild, sender.sent[0].category)
			assert.Equal(t, "apk", sender.sent[0].parameter)
			assert.Equal(t, tt.want, sender.sent[0].opts.Dimensions)
		})
	}
}

func TestAnalyticsConfigEvent(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    string
	}{
		{"Enabled", true, "true"},
		{"Disabled", false, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{}
			NewAnalyticsConfigEvent(sender, tt.enabled).Send()

			require.Len(t, sender.sent, 1)
			got := sender.sent[0]
			assert.Equal(t, CategoryAnalytics, got.category)
			assert.Equal(t, "enabled", got.parameter)
			assert.Equal(t, tt.want, got.opts.Label)
			assert.Nil(t, got.opts.Dimensions)
		})
	}
}

func TestPubResultEvent(t *testing.T) {
	sender := &recordingSender{}
	NewPubResultEvent(sender, "get", "success").Send()

	require.Len(t, sender.sent, 1)
	got := sender.sent[0]
	assert.Equal(t, CategoryPubResult, got.category)
	assert.Equal(t, "get", got.parameter)
	assert.Equal(t, "success", got.opts.Label)
	assert.Nil(t, got.opts.Dimensions)
}

func TestNullSafetyAnalysisEvent(t *testing.T) {
	t.Run("RuntimeModeOnly", func(t *testing.T) {
		sender := &recordingSender{}
		NewNullSafetyAnalysisEvent(sender, "sound", nil).Send()

		require.Len(t, sender.sent, 1)
		assert.Equal(t, CategoryNullSafety, sender.sent[0].category)
		assert.Equal(t, "runtime-mode", sender.sent[0].parameter)
		assert.Equal(t, "sound", sender.sent[0].opts.Label)
	})

	t.Run("WithLanguageVersion", func(t *testing.T) {
		sender := &recordingSender{}
		NewNullSafetyAnalysisEvent(sender, "sound", ptr("2.19")).Send()

		require.Len(t, sender.sent, 2)
		assert.Equal(t, "language-version", sender.sent[1].parameter)
		assert.Equal(t, "2.19", sender.sent[1].opts.Label)
	})
}
