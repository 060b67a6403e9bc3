package pipeline

import "fmt"

// PipelineError reports which stage a run failed in along with the cause.
type PipelineError struct {
	State State
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline failed while %s: %v", e.State, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
