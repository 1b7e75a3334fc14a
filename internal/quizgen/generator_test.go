package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/retrieval"
)

func validQuizJSON(t *testing.T, qs []Question) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(quizOutput{Questions: qs})
	if err != nil {
		t.Fatalf("marshal quiz: %v", err)
	}
	return b
}

func testIndex(t *testing.T) *retrieval.MemoryIndex {
	t.Helper()
	return retrieval.NewMemoryIndex([]string{
		"Variables hold values that can change during execution.",
		"Functions group reusable steps under one name.",
	})
}

func sampleQuestion() Question {
	return Question{
		Text:        "What does a variable hold?",
		Options:     []string{"A value", "A file", "A network port", "A color"},
		Correct:     "A",
		Explanation: "Variables store values.",
	}
}

func TestGenerateStructuredOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuizJSON(t, []Question{sampleQuestion()}),
	})
	gen := New(mock, testIndex(t), DefaultConfig())

	qs, err := gen.Generate(context.Background(), []string{"Variables"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].Text != "What does a variable hold?" {
		t.Errorf("unexpected question text %q", qs[0].Text)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "quiz-questions" {
		t.Errorf("request did not carry the quiz schema")
	}
}

func TestGenerateNoTopics(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, testIndex(t), DefaultConfig())

	qs, err := gen.Generate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want the single placeholder", len(qs))
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider should not be called when nothing was covered")
	}
}

func TestGenerateProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: every call fails
	gen := New(mock, testIndex(t), DefaultConfig())

	qs, err := gen.Generate(context.Background(), []string{"Variables"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != len(DefaultQuestions()) {
		t.Errorf("got %d questions, want the default set of %d", len(qs), len(DefaultQuestions()))
	}
}

func TestGenerateInvalidResponseParsedAsText(t *testing.T) {
	text := "Question 1: What does a variable hold?\n" +
		"A. A value\nB. A file\nC. A port\nD. A color\n" +
		"Correct answer: A\nExplanation: Variables store values.\n"
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: json.RawMessage(text), Err: errors.New("schema mismatch")},
	})
	gen := New(mock, testIndex(t), DefaultConfig())

	qs, err := gen.Generate(context.Background(), []string{"Variables"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1 parsed from text", len(qs))
	}
	if qs[0].Correct != "A" {
		t.Errorf("parsed correct label %q, want A", qs[0].Correct)
	}
}

func TestGenerateMalformedJSONFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": "not an array"`),
	})
	gen := New(mock, testIndex(t), DefaultConfig())

	qs, err := gen.Generate(context.Background(), []string{"Variables"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != len(DefaultQuestions()) {
		t.Errorf("got %d questions, want the default set", len(qs))
	}
}

func TestGenerateContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := llm.NewMockProvider()
	gen := New(mock, testIndex(t), DefaultConfig())

	_, err := gen.Generate(ctx, []string{"Variables"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestGenerateDropsInvalidQuestions(t *testing.T) {
	bad := sampleQuestion()
	bad.Options = bad.Options[:2]
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuizJSON(t, []Question{bad, sampleQuestion()}),
	})
	gen := New(mock, testIndex(t), DefaultConfig())

	qs, err := gen.Generate(context.Background(), []string{"Variables"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1 after dropping the malformed one", len(qs))
	}
}

func TestGenerateTruncatesToConfiguredCount(t *testing.T) {
	many := []Question{sampleQuestion(), sampleQuestion(), sampleQuestion(), sampleQuestion(), sampleQuestion()}
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON(t, many)})

	cfg := DefaultConfig()
	cfg.NumQuestions = 2
	gen := New(mock, testIndex(t), cfg)

	qs, err := gen.Generate(context.Background(), []string{"Variables"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 2 {
		t.Errorf("got %d questions, want 2", len(qs))
	}
}
