// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionNumber(t *testing.T) {
	require.Equal(t, "0.0.0-dev.0", VersionNumber())
	require.True(t, IsDevVersion())

	orig := Version
	defer func() { Version = orig }()

	Version = "1.4.2 (commit 8a7f61cd)"
	require.Equal(t, "1.4.2", VersionNumber())
	require.False(t, IsDevVersion())

	Version = ""
	require.Equal(t, "unknown", VersionNumber())
}
