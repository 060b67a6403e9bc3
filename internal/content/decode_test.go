package content

import (
	"errors"
	"strings"
	"testing"
)

const validBundleJSON = `{
	"explanation": "Photosynthesis is how plants make their own food using sunlight.",
	"mcqs": [
		{"question": "What do plants need for photosynthesis?", "options": ["Sunlight", "Darkness", "Salt", "Plastic"], "answer": "Sunlight"},
		{"question": "Where does photosynthesis happen?", "options": ["Roots", "Leaves", "Soil", "Air"], "answer": "Leaves"},
		{"question": "What gas do plants release?", "options": ["Oxygen", "Helium", "Methane", "Neon"], "answer": "Oxygen"},
		{"question": "What do plants absorb from the air?", "options": ["Carbon dioxide", "Nitrogen", "Hydrogen", "Argon"], "answer": "Carbon dioxide"}
	]
}`

func TestDecodeBundle_Valid(t *testing.T) {
	b, err := DecodeBundle([]byte(validBundleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(b.Questions))
	}
	if b.Questions[0].Answer != "Sunlight" {
		t.Errorf("unexpected answer: %q", b.Questions[0].Answer)
	}
}

func TestDecodeBundle_FencedJSON(t *testing.T) {
	fenced := "```json\n" + validBundleJSON + "\n```"
	b, err := DecodeBundle([]byte(fenced))
	if err != nil {
		t.Fatalf("unexpected error decoding fenced JSON: %v", err)
	}
	if len(b.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(b.Questions))
	}
}

func TestDecodeBundle_BareFence(t *testing.T) {
	fenced := "```\n" + validBundleJSON + "\n```"
	if _, err := DecodeBundle([]byte(fenced)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeBundle_WrongQuestionCount(t *testing.T) {
	raw := `{"explanation": "x", "mcqs": [{"question": "q", "options": ["a","b","c","d"], "answer": "a"}]}`
	_, err := DecodeBundle([]byte(raw))
	if err == nil {
		t.Fatal("expected error for wrong question count")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if vErr.Field != "mcqs" {
		t.Errorf("unexpected field: %q", vErr.Field)
	}
}

func TestDecodeBundle_AnswerNotInOptions(t *testing.T) {
	raw := strings.Replace(validBundleJSON, `"answer": "Leaves"`, `"answer": "The leaves"`, 1)
	_, err := DecodeBundle([]byte(raw))
	if err == nil {
		t.Fatal("expected error for answer not matching any option")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if vErr.Field != "mcqs[1].answer" {
		t.Errorf("unexpected field: %q", vErr.Field)
	}
}

func TestDecodeBundle_WrongOptionCount(t *testing.T) {
	raw := strings.Replace(validBundleJSON,
		`["Roots", "Leaves", "Soil", "Air"]`,
		`["Roots", "Leaves", "Soil"]`, 1)
	if _, err := DecodeBundle([]byte(raw)); err == nil {
		t.Fatal("expected error for wrong option count")
	}
}

func TestDecodeBundle_EmptyOption(t *testing.T) {
	raw := strings.Replace(validBundleJSON,
		`["Roots", "Leaves", "Soil", "Air"]`,
		`["Roots", "Leaves", "", "Air"]`, 1)
	_, err := DecodeBundle([]byte(raw))
	if err == nil {
		t.Fatal("expected error for empty option")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if vErr.Field != "mcqs[1].options[2]" {
		t.Errorf("unexpected field: %q", vErr.Field)
	}
}

func TestDecodeBundle_BlankOption(t *testing.T) {
	raw := strings.Replace(validBundleJSON,
		`"Helium"`, `"   "`, 1)
	if _, err := DecodeBundle([]byte(raw)); err == nil {
		t.Fatal("expected error for whitespace-only option")
	}
}

func TestDecodeBundle_EmptyExplanation(t *testing.T) {
	raw := strings.Replace(validBundleJSON, "Photosynthesis is how plants make their own food using sunlight.", "  ", 1)
	if _, err := DecodeBundle([]byte(raw)); err == nil {
		t.Fatal("expected error for empty explanation")
	}
}

func TestDecodeBundle_MalformedJSON(t *testing.T) {
	_, err := DecodeBundle([]byte("here is your content!"))
	if err == nil {
		t.Fatal("expected error for non-JSON input")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestDecodeReview_Pass(t *testing.T) {
	r, err := DecodeReview([]byte(`{"status": "pass", "feedback": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Passed() {
		t.Error("expected Passed() to be true")
	}
}

func TestDecodeReview_FailWithFeedback(t *testing.T) {
	raw := "```json\n" + `{"status": "fail", "feedback": ["Vocabulary too advanced for grade 3", "Question 2 has two plausible answers"]}` + "\n```"
	r, err := DecodeReview([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Passed() {
		t.Error("expected Passed() to be false")
	}
	if len(r.Feedback) != 2 {
		t.Errorf("expected 2 feedback items, got %d", len(r.Feedback))
	}
}

func TestDecodeReview_InvalidStatus(t *testing.T) {
	if _, err := DecodeReview([]byte(`{"status": "maybe", "feedback": []}`)); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```  \n", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripFences(tc.in); got != tc.want {
				t.Errorf("StripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncodeBundleRoundTrip(t *testing.T) {
	b, err := DecodeBundle([]byte(validBundleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := EncodeBundle(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := DecodeBundle([]byte(out))
	if err != nil {
		t.Fatalf("re-decoding encoded bundle: %v", err)
	}
	if again.Explanation != b.Explanation {
		t.Error("explanation changed across encode/decode")
	}
}
