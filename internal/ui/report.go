// Package ui renders pipeline run records for terminal display.
package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edugen/internal/content"
	"github.com/abhisek/edugen/internal/pipeline"
	"github.com/abhisek/edugen/internal/ui/theme"
)

// RenderRunRecord renders a completed run as a styled report.
func RenderRunRecord(r *pipeline.RunRecord, width int) string {
	if width <= 0 {
		width = 80
	}
	contentWidth := width - 6
	if contentWidth < 20 {
		contentWidth = 20
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("%s (Grade %d)", r.Input.Topic, r.Input.Grade)))
	b.WriteString("\n")
	b.WriteString(renderVerdict(r))
	b.WriteString("\n\n")

	explanation := lipgloss.NewStyle().Width(contentWidth).Render(
		theme.Body.Render(r.FinalOutput.Explanation))
	b.WriteString(theme.Card.Render(explanation))
	b.WriteString("\n\n")

	b.WriteString(theme.Label.Render("Check your understanding"))
	b.WriteString("\n\n")
	for i, q := range r.FinalOutput.Questions {
		b.WriteString(renderQuestion(i+1, q, contentWidth))
		b.WriteString("\n")
	}

	if r.Refined() && len(r.Refinement.FeedbackAddressed) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("Reviewer feedback addressed"))
		b.WriteString("\n")
		for _, f := range r.Refinement.FeedbackAddressed {
			b.WriteString(theme.Subtitle.Render("  • " + f))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderVerdict(r *pipeline.RunRecord) string {
	if r.Refined() {
		return theme.Refined.Render("⟳ revised once after review")
	}
	if r.InitialReview.Passed() {
		return theme.Passed.Render("✓ passed review")
	}
	return ""
}

func renderQuestion(n int, q content.Question, width int) string {
	var b strings.Builder
	question := lipgloss.NewStyle().Width(width).Render(
		theme.Body.Render(fmt.Sprintf("%d. %s", n, q.Text)))
	b.WriteString(question)
	b.WriteString("\n")

	letters := []string{"a", "b", "c", "d"}
	for i, opt := range q.Options {
		letter := "?"
		if i < len(letters) {
			letter = letters[i]
		}
		line := fmt.Sprintf("   %s) %s", letter, opt)
		if opt == q.Answer {
			b.WriteString(theme.Answer.Render(line + "  ✓"))
		} else {
			b.WriteString(theme.Body.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderRunSummary renders a one-line outcome for non-interactive output.
func RenderRunSummary(r *pipeline.RunRecord) string {
	elapsed := r.FinishedAt.Sub(r.StartedAt).Round(100 * time.Millisecond)
	if r.Refined() {
		return fmt.Sprintf("Generated %q for grade %d in %s (1 revision)", r.Input.Topic, r.Input.Grade, elapsed)
	}
	return fmt.Sprintf("Generated %q for grade %d in %s", r.Input.Topic, r.Input.Grade, elapsed)
}
