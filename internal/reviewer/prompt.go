package reviewer

import (
	"fmt"

	"github.com/abhisek/edugen/internal/content"
)

const systemPrompt = `You are a strict educational content reviewer. You evaluate explanations
and multiple-choice questions written for a specific grade level.

Evaluate the submitted content against these criteria:
1. Age-appropriateness: vocabulary, sentence length, and examples suit the
   target grade.
2. Conceptual correctness: the explanation contains no factual errors or
   misleading simplifications.
3. Clarity: the explanation is well organized and easy to follow.
4. Question quality: each question tests the explanation, has exactly one
   defensible answer, and its distractors are plausible but clearly wrong.

Return status "pass" only when the content meets all four criteria. When it
does not, return status "fail" with specific, actionable feedback the author
can apply. Respond with the JSON object only, without markdown code fences.`

// SystemPrompt returns the reviewer's system prompt.
func SystemPrompt() string {
	return systemPrompt
}

func buildUserMessage(grade int, topic string, bundle string) string {
	return fmt.Sprintf(
		"Topic: %s\nTarget grade level: %d\n\nContent to review:\n%s",
		topic, grade, bundle,
	)
}

// encodeForReview renders the bundle the way it is shown to the reviewer.
func encodeForReview(b *content.Bundle) (string, error) {
	return content.EncodeBundle(b)
}
