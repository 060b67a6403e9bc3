package tui

import (
	"time"

	"github.com/abhisek/edugen/internal/pipeline"
)

// stateMsg carries a pipeline state transition into the update loop.
type stateMsg pipeline.State

// runDoneMsg is sent when the pipeline run finishes.
type runDoneMsg struct {
	Record *pipeline.RunRecord
	Err    error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time

// savedMsg is sent after exporting a run record to disk.
type savedMsg struct {
	Path string
	Err  error
}
