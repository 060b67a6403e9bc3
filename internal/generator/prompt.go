package generator

import (
	"fmt"
	"strings"

	"github.com/abhisek/edugen/internal/content"
)

const systemPrompt = `You are an expert educational content creator. You write explanations and
assessment questions precisely calibrated to a student's grade level.

Given a topic and a grade, produce:
1. A clear explanation of the topic in 2-3 paragraphs, using vocabulary and
   examples appropriate for that grade.
2. Exactly %d multiple-choice questions that test understanding of the
   explanation. Each question has exactly %d options, and the answer field
   repeats the correct option verbatim.

Respond with the JSON object only. Do not wrap it in markdown code fences
and do not add commentary before or after it.`

// SystemPrompt returns the generator's system prompt.
func SystemPrompt() string {
	return fmt.Sprintf(systemPrompt, content.QuestionCount, content.OptionCount)
}

// buildUserMessage assembles the per-call request. When feedback from a
// prior review is present, the request becomes a revision instruction.
func buildUserMessage(grade int, topic string, feedback []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\nGrade level: %d\n", topic, grade)

	if len(feedback) > 0 {
		b.WriteString("\nA reviewer rejected your previous attempt. Revise the content to address every point below:\n")
		for _, f := range feedback {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}
	return b.String()
}
