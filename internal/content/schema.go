package content

import "github.com/abhisek/edugen/internal/llm"

// BundleSchema constrains generator output to the bundle wire shape.
var BundleSchema = &llm.Schema{
	Name:        "content_bundle",
	Description: "An educational explanation with multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Explanation of the topic, 2-3 paragraphs, written for the target grade level",
			},
			"mcqs": map[string]any{
				"type":     "array",
				"minItems": QuestionCount,
				"maxItems": QuestionCount,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"minItems": OptionCount,
							"maxItems": OptionCount,
							"items":    map[string]any{"type": "string", "minLength": 1},
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct option, repeated verbatim",
						},
					},
					"required":             []any{"question", "options", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"explanation", "mcqs"},
		"additionalProperties": false,
	},
}

// ReviewSchema constrains reviewer output to the review wire shape.
var ReviewSchema = &llm.Schema{
	Name:        "content_review",
	Description: "A pass/fail review of generated educational content",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status": map[string]any{
				"type": "string",
				"enum": []any{"pass", "fail"},
			},
			"feedback": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific, actionable revision points; empty when status is pass",
			},
		},
		"required":             []any{"status", "feedback"},
		"additionalProperties": false,
	},
}
