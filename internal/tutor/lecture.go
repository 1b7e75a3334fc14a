package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/retrieval"
)

const lectureContextPassages = 3

// Lecture is the lecture progression controller. It presents outline
// topics in order, folding in the learner's last unresolved question
// when one exists.
type Lecture struct {
	provider  llm.Provider
	retriever retrieval.Retriever
}

// NewLecture creates the lecture controller.
func NewLecture(provider llm.Provider, retriever retrieval.Retriever) *Lecture {
	return &Lecture{provider: provider, retriever: retriever}
}

// Advance presents the next topic and moves the cursor forward by
// exactly one. At the end of the outline it re-emits the same completion
// message and leaves the cursor alone, so repeated calls are idempotent.
// Generation and retrieval failures propagate unhandled; the caller owns
// the apologize-and-keep-state policy.
func (l *Lecture) Advance(ctx context.Context, s *SessionState) error {
	if s.Completed() {
		s.append(AssistantMessage(AgentLecture, completionText))
		return nil
	}

	topic := s.Outline[s.CurrentStep]
	pending, _ := PendingQuestion(s.Messages)

	var passages []retrieval.Passage
	if l.retriever != nil {
		var err error
		passages, err = l.retriever.Retrieve(ctx, topic, lectureContextPassages)
		if err != nil {
			return &retrieval.ErrRetrieval{Query: topic, Err: err}
		}
	}

	resp, err := l.provider.Generate(llm.WithPurpose(ctx, "lecture"), llm.Request{
		System: lectureSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: lecturePrompt(topic, pending, passages)},
		},
		MaxTokens:   1200,
		Temperature: 0.6,
	})
	if err != nil {
		return fmt.Errorf("lecture generation for %q: %w", topic, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		text = fmt.Sprintf("Content for %s is being prepared.", topic)
	}

	msg := AssistantMessage(AgentLecture, text)
	msg.Step = s.CurrentStep
	s.append(msg)
	s.CurrentStep++
	s.append(AssistantMessage(AgentLecture, guidanceText(s.CurrentStep+1, len(s.Outline))))
	return nil
}
