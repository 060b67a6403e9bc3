// Package content defines the educational content types produced by the
// generation pipeline and their wire encoding.
package content

// Question is a single multiple-choice question. Answer is always the
// full text of one of the Options, never an index or letter.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// Bundle is one complete unit of generated content: an explanation of
// a topic plus comprehension questions.
type Bundle struct {
	Explanation string     `json:"explanation"`
	Questions   []Question `json:"mcqs"`
}

// QuestionCount is the number of questions in every bundle.
const QuestionCount = 4

// OptionCount is the number of options per question.
const OptionCount = 4

// ReviewStatus is the verdict of a content review.
type ReviewStatus string

const (
	StatusPass ReviewStatus = "pass"
	StatusFail ReviewStatus = "fail"
)

// ReviewResult is the outcome of reviewing a bundle. Feedback carries
// actionable revision points and is only meaningful when Status is fail.
type ReviewResult struct {
	Status   ReviewStatus `json:"status"`
	Feedback []string     `json:"feedback"`
}

// Passed reports whether the review accepted the content.
func (r *ReviewResult) Passed() bool {
	return r.Status == StatusPass
}
