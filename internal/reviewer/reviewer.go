// Package reviewer evaluates generated content bundles against grade-level
// quality criteria through an LLM provider.
package reviewer

import (
	"context"
	"fmt"

	"github.com/abhisek/edugen/internal/content"
	"github.com/abhisek/edugen/internal/llm"
)

// ReviewError wraps any failure during a review call.
type ReviewError struct {
	Err error
}

func (e *ReviewError) Error() string {
	return fmt.Sprintf("content review failed: %v", e.Err)
}

func (e *ReviewError) Unwrap() error { return e.Err }

// Reviewer evaluates content bundles.
type Reviewer struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Reviewer backed by the given provider.
func New(provider llm.Provider, cfg Config) *Reviewer {
	return &Reviewer{provider: provider, cfg: cfg}
}

// Review evaluates a bundle for the given grade and topic and returns
// the verdict. A fail verdict carries feedback for revision.
func (r *Reviewer) Review(ctx context.Context, grade int, topic string, bundle *content.Bundle) (*content.ReviewResult, error) {
	if bundle == nil {
		return nil, &ReviewError{Err: fmt.Errorf("nil bundle")}
	}

	encoded, err := encodeForReview(bundle)
	if err != nil {
		return nil, &ReviewError{Err: err}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeReview)
	resp, err := r.provider.Generate(ctx, llm.Request{
		System: SystemPrompt(),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(grade, topic, encoded)},
		},
		Schema:      content.ReviewSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	})
	if err != nil {
		return nil, &ReviewError{Err: err}
	}

	result, err := content.DecodeReview(resp.Content)
	if err != nil {
		return nil, &ReviewError{Err: err}
	}
	return result, nil
}
