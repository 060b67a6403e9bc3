// Package generator produces grade-calibrated educational content bundles
// through an LLM provider.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/edugen/internal/content"
	"github.com/abhisek/edugen/internal/llm"
)

// GenerationError wraps any failure during a generation call.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("content generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator creates content bundles.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator backed by the given provider.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate produces a bundle for the topic at the given grade level.
// A non-empty feedback list turns the call into a revision: the prompt
// instructs the model to address each point.
func (g *Generator) Generate(ctx context.Context, grade int, topic string, feedback []string) (*content.Bundle, error) {
	if grade < 1 {
		return nil, &GenerationError{Err: fmt.Errorf("grade must be positive, got %d", grade)}
	}
	if strings.TrimSpace(topic) == "" {
		return nil, &GenerationError{Err: fmt.Errorf("topic must not be empty")}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeGenerate)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: SystemPrompt(),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(grade, topic, feedback)},
		},
		Schema:      content.BundleSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	bundle, err := content.DecodeBundle(resp.Content)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	return bundle, nil
}
