// Package pipeline orchestrates content generation and review: generate,
// review, and at most one refinement pass when the review fails.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/edugen/internal/generator"
	"github.com/abhisek/edugen/internal/reviewer"
)

// Observer receives state transitions as a run progresses. Called
// synchronously from Run's goroutine.
type Observer func(State)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver registers a state transition callback.
func WithObserver(fn Observer) Option {
	return func(p *Pipeline) { p.observer = fn }
}

// Pipeline runs the generate-review-refine flow.
type Pipeline struct {
	gen      *generator.Generator
	rev      *reviewer.Reviewer
	observer Observer
}

// New creates a Pipeline from a generator and reviewer.
func New(gen *generator.Generator, rev *reviewer.Reviewer, opts ...Option) *Pipeline {
	p := &Pipeline{gen: gen, rev: rev}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) transition(s State) {
	if p.observer != nil {
		p.observer(s)
	}
}

// Run executes one full pipeline pass for the input. The generator is
// called at most twice and the reviewer exactly once. On failure the
// returned record is nil; no partial records are produced.
func (p *Pipeline) Run(ctx context.Context, in Input) (*RunRecord, error) {
	record := &RunRecord{
		ID:        uuid.New(),
		Input:     in,
		StartedAt: time.Now(),
	}
	p.transition(StateInit)

	p.transition(StateGenerating)
	initial, err := p.gen.Generate(ctx, in.Grade, in.Topic, nil)
	if err != nil {
		return nil, &PipelineError{State: StateGenerating, Err: err}
	}
	record.InitialGeneration = initial

	p.transition(StateReviewing)
	review, err := p.rev.Review(ctx, in.Grade, in.Topic, initial)
	if err != nil {
		return nil, &PipelineError{State: StateReviewing, Err: err}
	}
	record.InitialReview = review

	if review.Passed() {
		p.transition(StateAccepted)
		record.FinalOutput = initial
	} else {
		p.transition(StateRefining)
		refined, err := p.gen.Generate(ctx, in.Grade, in.Topic, review.Feedback)
		if err != nil {
			return nil, &PipelineError{State: StateRefining, Err: err}
		}
		record.Refinement = &Refinement{
			Content:           refined,
			FeedbackAddressed: review.Feedback,
		}
		record.FinalOutput = refined
	}

	record.FinishedAt = time.Now()
	p.transition(StateDone)
	return record, nil
}
