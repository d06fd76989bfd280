// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package events

// Event categories. A category is the coarse bucket an emission lands in;
// the parameter narrows it to a command name or dynamic identifier.
const (
	CategoryHot           = "hot"
	CategoryBuild         = "build"
	CategoryPubResult     = "pub-result"
	CategoryAnalytics     = "analytics"
	CategoryDoctorResult  = "doctor-result"
	CategoryCommandResult = "tool-command-result"
	CategoryCommandMaxRss = "tool-command-max-rss"
	CategoryNullSafety    = "null-safety"
)

// Hot event parameters.
const (
	HotKindReload  = "reload"
	HotKindRestart = "restart"
)
