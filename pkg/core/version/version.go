// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// App is the semantic version of BookFab
const App = "1.0.0"

// build is the fourth component shown in the desktop shell
const build = 0

// Set at link time via -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Display returns the version as shown in the sidebar, e.g. v1.0.0.0
func Display() string {
	return fmt.Sprintf("v%s.%d", App, build)
}

// Info returns a multi-line build description
func Info() string {
	return fmt.Sprintf("BookFab %s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		Display(), GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
