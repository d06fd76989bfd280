// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

// Package internal holds cross-cutting application metadata.
package internal

import "strings"

// Version is the full version string, for example
// "1.2.0 (commit 8a7f61cd)". Overridden at build time via ldflags.
var Version = "0.0.0-dev.0 (commit 0000000000000000000000000000000000000000)"

// VersionNumber returns the semantic version portion of Version, or
// "unknown" when Version is malformed.
func VersionNumber() string {
	parts := strings.Fields(Version)
	if len(parts) == 0 || parts[0] == "" {
		return "unknown"
	}
	return parts[0]
}

// IsDevVersion reports whether this is an unreleased development build.
func IsDevVersion() bool {
	return VersionNumber() == "0.0.0-dev.0"
}
