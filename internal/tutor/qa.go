package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/retrieval"
)

const qaContextPassages = 3

// QA answers free-form learner questions with retrieval-grounded
// generation. It never moves the lecture cursor; only a later
// continue command does that, through the lecture controller.
type QA struct {
	provider  llm.Provider
	retriever retrieval.Retriever
}

// NewQA creates the Q&A handler.
func NewQA(provider llm.Provider, retriever retrieval.Retriever) *QA {
	return &QA{provider: provider, retriever: retriever}
}

// Answer responds to the most recent user message of any kind. With no
// user message at all it emits a fixed notice and changes nothing else.
// Generation and retrieval failures propagate unhandled, same as the
// lecture controller.
func (q *QA) Answer(ctx context.Context, s *SessionState) error {
	question, ok := LastUserMessage(s.Messages)
	if !ok {
		s.append(AssistantMessage(AgentQA, noQuestionText))
		return nil
	}

	var passages []retrieval.Passage
	if q.retriever != nil {
		var err error
		passages, err = q.retriever.Retrieve(ctx, question, qaContextPassages)
		if err != nil {
			return &retrieval.ErrRetrieval{Query: question, Err: err}
		}
	}

	resp, err := q.provider.Generate(llm.WithPurpose(ctx, "qa"), llm.Request{
		System: qaSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: qaPrompt(question, passages)},
		},
		MaxTokens:   1000,
		Temperature: 0.5,
	})
	if err != nil {
		return fmt.Errorf("answer generation: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		text = emptyAnswerText
	}

	s.append(AssistantMessage(AgentQA, text))
	s.append(AssistantMessage(AgentQA, guidanceText(s.CurrentStep+1, len(s.Outline))))
	return nil
}
