package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/retrieval"
)

func lectureIndex() *retrieval.MemoryIndex {
	return retrieval.NewMemoryIndex([]string{
		"intro covers what the course is about",
		"loops repeat a block of work",
	})
}

func textResponse(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func TestLectureAdvancesThroughOutline(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("Intro explanation."),
		textResponse("Loops explanation."),
	)
	lec := NewLecture(mock, lectureIndex())
	s := NewSession([]string{"intro", "loops"})

	if err := lec.Advance(context.Background(), s); err != nil {
		t.Fatalf("call 1: %v", err)
	}
	if s.CurrentStep != 1 {
		t.Fatalf("step after call 1 = %d, want 1", s.CurrentStep)
	}
	if got := s.Messages[0]; got.AgentType != AgentLecture || got.Step != 0 {
		t.Errorf("first message not a step-0 lecture message: %+v", got)
	}
	if !strings.Contains(s.Messages[0].Content, "Intro explanation.") {
		t.Errorf("unexpected lecture content %q", s.Messages[0].Content)
	}

	if err := lec.Advance(context.Background(), s); err != nil {
		t.Fatalf("call 2: %v", err)
	}
	if s.CurrentStep != 2 {
		t.Fatalf("step after call 2 = %d, want 2", s.CurrentStep)
	}

	// Terminal state: same completion message every time, no movement.
	before := len(s.Messages)
	for i := 0; i < 3; i++ {
		if err := lec.Advance(context.Background(), s); err != nil {
			t.Fatalf("terminal call %d: %v", i, err)
		}
		if s.CurrentStep != 2 {
			t.Fatalf("terminal call %d moved the cursor to %d", i, s.CurrentStep)
		}
		if got := s.Messages[len(s.Messages)-1].Content; got != completionText {
			t.Fatalf("terminal call %d emitted %q", i, got)
		}
	}
	if len(s.Messages) != before+3 {
		t.Errorf("each terminal call should append exactly one message")
	}
	if mock.CallCount() != 2 {
		t.Errorf("terminal calls must not hit the provider, got %d calls", mock.CallCount())
	}
}

func TestLecturePendingQuestionWeighted(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("Weighted explanation."))
	lec := NewLecture(mock, lectureIndex())
	s := NewSession([]string{"loops"})
	s.append(UserMessage("why do loops terminate?"))
	s.append(UserMessage("continue"))

	if err := lec.Advance(context.Background(), s); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "why do loops terminate?") {
		t.Errorf("pending question missing from the prompt:\n%s", prompt)
	}
	if s.CurrentStep != 1 {
		t.Errorf("step = %d, a folded-in question still advances by exactly 1", s.CurrentStep)
	}
}

func TestLectureEmptyGenerationPlaceholder(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("  "))
	lec := NewLecture(mock, lectureIndex())
	s := NewSession([]string{"loops"})

	if err := lec.Advance(context.Background(), s); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got := s.Messages[0].Content; got != "Content for loops is being prepared." {
		t.Errorf("got %q, want the placeholder", got)
	}
	if s.CurrentStep != 1 {
		t.Errorf("placeholder still advances the cursor")
	}
}

func TestLectureGenerationFailurePropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails every call
	lec := NewLecture(mock, lectureIndex())
	s := NewSession([]string{"loops"})

	if err := lec.Advance(context.Background(), s); err == nil {
		t.Fatal("expected the generation failure to propagate")
	}
	if s.CurrentStep != 0 || len(s.Messages) != 0 {
		t.Error("a failed advance must not mutate the session")
	}
}
