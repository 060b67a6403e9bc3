package content

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// StripFences removes a surrounding markdown code fence from raw model
// output. Models sometimes wrap JSON in ```json ... ``` despite being
// told not to; everything downstream decodes through this first.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// DecodeBundle parses raw model output into a Bundle and enforces the
// cross-field invariants the JSON schema cannot express.
func DecodeBundle(raw []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal([]byte(StripFences(string(raw))), &b); err != nil {
		return nil, &ValidationError{Field: "bundle", Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}
	if strings.TrimSpace(b.Explanation) == "" {
		return nil, &ValidationError{Field: "explanation", Reason: "must not be empty"}
	}
	if len(b.Questions) != QuestionCount {
		return nil, &ValidationError{
			Field:  "mcqs",
			Reason: fmt.Sprintf("expected %d questions, got %d", QuestionCount, len(b.Questions)),
		}
	}
	for i, q := range b.Questions {
		field := fmt.Sprintf("mcqs[%d]", i)
		if strings.TrimSpace(q.Text) == "" {
			return nil, &ValidationError{Field: field + ".question", Reason: "must not be empty"}
		}
		if len(q.Options) != OptionCount {
			return nil, &ValidationError{
				Field:  field + ".options",
				Reason: fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)),
			}
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return nil, &ValidationError{
					Field:  fmt.Sprintf("%s.options[%d]", field, j),
					Reason: "must not be empty",
				}
			}
		}
		if !slices.Contains(q.Options, q.Answer) {
			return nil, &ValidationError{
				Field:  field + ".answer",
				Reason: "answer must match one of the options verbatim",
			}
		}
	}
	return &b, nil
}

// DecodeReview parses raw model output into a ReviewResult.
func DecodeReview(raw []byte) (*ReviewResult, error) {
	var r ReviewResult
	if err := json.Unmarshal([]byte(StripFences(string(raw))), &r); err != nil {
		return nil, &ValidationError{Field: "review", Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}
	if r.Status != StatusPass && r.Status != StatusFail {
		return nil, &ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("must be %q or %q, got %q", StatusPass, StatusFail, r.Status),
		}
	}
	return &r, nil
}

// EncodeBundle renders a bundle as indented JSON, suitable for embedding
// in a review prompt or exporting to a file.
func EncodeBundle(b *Bundle) (string, error) {
	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding bundle: %w", err)
	}
	return string(out), nil
}
