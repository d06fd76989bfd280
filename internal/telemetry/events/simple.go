// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package events

import "strconv"

// AnalyticsConfigEvent reports the user turning analytics collection on or
// off. The flag is folded into the label; there are no custom dimensions, so
// the base send path applies.
type AnalyticsConfigEvent struct {
	UsageEvent
}

func NewAnalyticsConfigEvent(sender Sender, enabled bool) *AnalyticsConfigEvent {
	return &AnalyticsConfigEvent{
		UsageEvent: UsageEvent{
			Category:  CategoryAnalytics,
			Parameter: "enabled",
			Label:     strconv.FormatBool(enabled),
			sender:    sender,
		},
	}
}

// PubResultEvent reports the outcome of a dependency-resolution invocation.
// context is the pub sub-command run, for example "get" or "upgrade".
type PubResultEvent struct {
	UsageEvent
}

func NewPubResultEvent(sender Sender, context, result string) *PubResultEvent {
	return &PubResultEvent{
		UsageEvent: UsageEvent{
			Category:  CategoryPubResult,
			Parameter: context,
			Label:     result,
			sender:    sender,
		},
	}
}

// NullSafetyAnalysisEvent reports the null-safety runtime mode of the current
// project, and the analyzed language version when one is known.
type NullSafetyAnalysisEvent struct {
	UsageEvent

	LanguageVersion *string
}

func NewNullSafetyAnalysisEvent(sender Sender, runtimeMode string, languageVersion *string) *NullSafetyAnalysisEvent {
	return &NullSafetyAnalysisEvent{
		UsageEvent: UsageEvent{
			Category:  CategoryNullSafety,
			Parameter: "runtime-mode",
			Label:     runtimeMode,
			sender:    sender,
		},
		LanguageVersion: languageVersion,
	}
}

func (e *NullSafetyAnalysisEvent) Send() {
	e.UsageEvent.Send()

	if e.LanguageVersion != nil {
		e.sender.SendEvent(CategoryNullSafety, "language-version", SendOptions{Label: *e.LanguageVersion})
	}
}
