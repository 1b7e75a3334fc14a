package tutor

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/coursepilot/internal/llm"
)

func TestQAAnswersLastUserMessage(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("A loop repeats work."))
	qa := NewQA(mock, lectureIndex())
	s := NewSession([]string{"intro", "loops"})
	s.CurrentStep = 1
	s.append(UserMessage("what is a loop?"))

	if err := qa.Answer(context.Background(), s); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if s.CurrentStep != 1 {
		t.Errorf("Q&A must never move the cursor, got %d", s.CurrentStep)
	}
	if len(s.Messages) != 3 {
		t.Fatalf("got %d messages, want question + answer + guidance", len(s.Messages))
	}
	if got := s.Messages[1]; got.AgentType != AgentQA || !strings.Contains(got.Content, "A loop repeats work.") {
		t.Errorf("unexpected answer message %+v", got)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "what is a loop?") {
		t.Errorf("question missing from the prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Course material:") {
		t.Errorf("retrieved passages missing from the prompt:\n%s", prompt)
	}
}

func TestQANoUserMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	qa := NewQA(mock, lectureIndex())
	s := NewSession([]string{"intro"})
	s.append(AssistantMessage(AgentLecture, "welcome"))

	if err := qa.Answer(context.Background(), s); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got := s.Messages[len(s.Messages)-1].Content; got != noQuestionText {
		t.Errorf("got %q, want the fixed no-question text", got)
	}
	if mock.CallCount() != 0 {
		t.Error("no provider call expected without a question")
	}
}

func TestQAGenerationFailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider()
	qa := NewQA(mock, lectureIndex())
	s := NewSession([]string{"intro"})
	s.append(UserMessage("what is x?"))

	if err := qa.Answer(context.Background(), s); err == nil {
		t.Fatal("expected the generation failure to propagate")
	}
	if len(s.Messages) != 1 {
		t.Error("a failed answer must not append messages")
	}
}
