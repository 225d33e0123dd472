package tui

import (
	"github.com/msto63/bookfab/internal/convert"
)

// convertDoneMsg carries the result of a background conversion
type convertDoneMsg struct {
	jobID  string
	result convert.Result
	err    error
}

// playbackDoneMsg ends a simulated playback run
type playbackDoneMsg struct {
	seq int
}
