package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/coursepilot/internal/llm"
)

// ErrNoOutline means no topic list could be derived from the document.
var ErrNoOutline = errors.New("no outline could be derived from the document")

const maxOutlineTopics = 12

// outlineSchema shapes the LLM's topic list.
var outlineSchema = &llm.Schema{
	Name:        "course-outline",
	Description: "An ordered list of lecture topics for a course",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topics": map[string]any{
				"type":        "array",
				"description": "Topic titles in teaching order, most fundamental first",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    maxOutlineTopics,
			},
		},
		"required":             []string{"topics"},
		"additionalProperties": false,
	},
}

const outlineSystemPrompt = `You are a course designer. Given a source document, produce an ordered
outline of lecture topics that teaches the material start to finish. Topic titles are short noun
phrases in the language of the document. Do not invent topics the document does not cover.`

// DeriveOutline produces the ordered topic list for a document. With a
// provider available it asks the model; without one, or when generation
// fails, it falls back to the document's own headings. Context errors
// propagate.
func DeriveOutline(ctx context.Context, provider llm.Provider, doc Document) ([]string, error) {
	if provider != nil {
		topics, err := generateOutline(ctx, provider, doc)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
		} else if len(topics) > 0 {
			return topics, nil
		}
	}
	return HeadingOutline(doc)
}

func generateOutline(ctx context.Context, provider llm.Provider, doc Document) ([]string, error) {
	resp, err := provider.Generate(llm.WithPurpose(ctx, "outline"), llm.Request{
		System: outlineSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: outlinePrompt(doc)},
		},
		Schema:      outlineSchema,
		MaxTokens:   600,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse outline response: %w", err)
	}

	var topics []string
	for _, t := range out.Topics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	if len(topics) > maxOutlineTopics {
		topics = topics[:maxOutlineTopics]
	}
	return topics, nil
}

func outlinePrompt(doc Document) string {
	const contentBudget = 8000
	content := doc.Content
	if len(content) > contentBudget {
		content = content[:contentBudget]
	}
	return fmt.Sprintf("Document title: %s\n\nDocument:\n%s", doc.Title, content)
}

// HeadingOutline derives the outline from the document's headings alone,
// skipping the title heading itself. A heading-free document cannot
// yield an outline.
func HeadingOutline(doc Document) ([]string, error) {
	var topics []string
	for _, line := range strings.Split(doc.Content, "\n") {
		m := headingRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		topic := strings.TrimSpace(m[2])
		if topic == "" || (topic == doc.Title && len(topics) == 0) {
			continue
		}
		topics = append(topics, topic)
		if len(topics) == maxOutlineTopics {
			break
		}
	}
	if len(topics) == 0 {
		return nil, ErrNoOutline
	}
	return topics, nil
}
