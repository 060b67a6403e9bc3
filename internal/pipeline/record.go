package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/edugen/internal/content"
)

// Input is the request that starts a run.
type Input struct {
	Grade int    `json:"grade"`
	Topic string `json:"topic"`
}

// Refinement records the single revision pass taken after a failed review.
type Refinement struct {
	Content           *content.Bundle `json:"content"`
	FeedbackAddressed []string        `json:"feedback_addressed"`
}

// RunRecord is the complete trace of one pipeline run. FinalOutput always
// points at either InitialGeneration or Refinement.Content; the refined
// bundle is never re-reviewed.
type RunRecord struct {
	ID                uuid.UUID             `json:"id"`
	Input             Input                 `json:"input"`
	InitialGeneration *content.Bundle       `json:"initial_generation"`
	InitialReview     *content.ReviewResult `json:"initial_review"`
	Refinement        *Refinement           `json:"refinement,omitempty"`
	FinalOutput       *content.Bundle       `json:"final_output"`
	StartedAt         time.Time             `json:"started_at"`
	FinishedAt        time.Time             `json:"finished_at"`
}

// Refined reports whether the run took the revision path.
func (r *RunRecord) Refined() bool {
	return r.Refinement != nil
}
