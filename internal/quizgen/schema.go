package quizgen

import "github.com/abhisek/coursepilot/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A set of multiple-choice questions testing the covered course topics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options, each prefixed with its label: 'A. ...' through 'D. ...'",
						},
						"correct": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "The label of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right, in one or two sentences",
						},
					},
					"required":             []any{"question", "options", "correct", "explanation"},
					"additionalProperties": false,
				},
				"description": "The generated questions, in presentation order",
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
