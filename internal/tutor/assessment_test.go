package tutor

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/quizgen"
)

func newAssessment(mock *llm.MockProvider) *Assessment {
	gen := quizgen.New(mock, lectureIndex(), quizgen.DefaultConfig())
	return NewAssessment(gen, mock, lectureIndex())
}

func threeQuestions() []quizgen.Question {
	return []quizgen.Question{
		{Text: "first?", Options: []string{"1", "2", "3", "4"}, Correct: "A", Explanation: "one"},
		{Text: "second?", Options: []string{"1", "2", "3", "4"}, Correct: "B", Explanation: "two"},
		{Text: "third?", Options: []string{"1", "2", "3", "4"}, Correct: "C", Explanation: "three"},
	}
}

func TestScore(t *testing.T) {
	qs := threeQuestions()

	tests := []struct {
		name      string
		answers   []string
		wantScore int
		wantLen   int
	}{
		{"all correct case-insensitive", []string{"a", "b", "C"}, 3, 3},
		{"partially correct", []string{"A", "A", "A"}, 1, 3},
		{"none correct", []string{"D", "D", "D"}, 0, 3},
		{"length mismatch fails closed", []string{"A"}, 0, 0},
		{"empty both", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := qs
			if tt.name == "empty both" {
				questions = nil
			}
			score, results := Score(questions, tt.answers)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if len(results) != tt.wantLen {
				t.Errorf("details length = %d, want %d", len(results), tt.wantLen)
			}
		})
	}
}

func TestScoreSingleLowercase(t *testing.T) {
	qs := []quizgen.Question{{Text: "q", Options: []string{"1", "2", "3", "4"}, Correct: "B"}}
	score, results := Score(qs, []string{"b"})
	if score != 1 {
		t.Errorf("score = %d, want 1", score)
	}
	if len(results) != 1 || !results[0].Correct {
		t.Errorf("results = %+v, want one correct entry", results)
	}
}

func TestAssessmentStartEmitsFirstQuestion(t *testing.T) {
	mock := llm.NewMockProvider() // provider fails: generator falls back to defaults
	a := newAssessment(mock)
	s := NewSession([]string{"intro"})
	s.CurrentStep = 1

	if err := a.Handle(context.Background(), s, "test"); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if s.Quiz.Phase() != QuizInProgress || !s.Quiz.InProgress {
		t.Fatal("quiz should be in progress after entry")
	}
	if len(s.Quiz.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(s.Quiz.Questions))
	}
	last := s.Messages[len(s.Messages)-1].Content
	if !strings.Contains(last, "Question 1:") || !strings.Contains(last, "A.") {
		t.Errorf("first question not emitted:\n%s", last)
	}
}

func TestAssessmentNoTopicsFallbackQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newAssessment(mock)
	s := NewSession([]string{"intro"}) // step 0: nothing covered

	if err := a.Handle(context.Background(), s, "test"); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(s.Quiz.Questions) != 1 {
		t.Errorf("got %d questions, want the single fallback", len(s.Quiz.Questions))
	}
}

func TestAssessmentInvalidAnswer(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newAssessment(mock)
	s := NewSession([]string{"intro"})
	s.Quiz.Questions = threeQuestions()
	s.Quiz.InProgress = true

	if err := a.Handle(context.Background(), s, "E"); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(s.Quiz.Answers) != 0 {
		t.Fatalf("invalid input recorded an answer: %v", s.Quiz.Answers)
	}
	last := s.Messages[len(s.Messages)-1].Content
	if !strings.Contains(last, "not a valid answer") || !strings.Contains(last, "first?") {
		t.Errorf("current question not re-emitted with an error prefix:\n%s", last)
	}
}

func TestAssessmentFullCycle(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newAssessment(mock)
	s := NewSession([]string{"intro"})
	s.Quiz.Questions = threeQuestions()
	s.Quiz.InProgress = true

	for _, ans := range []string{"a", "x", "C"} {
		if err := a.Handle(context.Background(), s, ans); err != nil {
			t.Fatalf("Handle(%q): %v", ans, err)
		}
	}
	// "x" was rejected, so only two answers are in; finish with the third.
	if len(s.Quiz.Answers) != 2 {
		t.Fatalf("answers = %v, want two recorded", s.Quiz.Answers)
	}
	if err := a.Handle(context.Background(), s, "b"); err != nil {
		t.Fatalf("final answer: %v", err)
	}

	if s.Quiz.Phase() != QuizCompleted || s.Quiz.InProgress {
		t.Fatal("quiz should be completed")
	}
	// Answers ended up A, C, B against correct A, B, C.
	if s.Quiz.Score != 1 {
		t.Errorf("score = %d, want 1", s.Quiz.Score)
	}
	last := s.Messages[len(s.Messages)-1].Content
	if !strings.Contains(last, "Score: 1/3") {
		t.Errorf("results summary missing the score:\n%s", last)
	}
	if !strings.Contains(last, "correct answer: B") {
		t.Errorf("results summary missing chosen vs correct labels:\n%s", last)
	}
}

func TestAssessmentRestart(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newAssessment(mock)
	s := NewSession([]string{"intro"})
	s.CurrentStep = 1
	s.Quiz.Questions = threeQuestions()
	s.Quiz.Answers = []string{"A", "B", "C"}
	s.Quiz.Score = 3

	if err := a.Handle(context.Background(), s, "restart quiz"); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if s.Quiz.Phase() != QuizInProgress {
		t.Fatal("restart should land in a fresh in-progress quiz in the same call")
	}
	if len(s.Quiz.Answers) != 0 || s.Quiz.Score != 0 {
		t.Errorf("restart did not clear answers/score: %v %d", s.Quiz.Answers, s.Quiz.Score)
	}
	last := s.Messages[len(s.Messages)-1].Content
	if !strings.Contains(last, "Question 1:") {
		t.Errorf("fresh first question not emitted:\n%s", last)
	}
}

func TestAssessmentCompletedContinue(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newAssessment(mock)
	s := NewSession([]string{"intro"})
	s.Quiz.Questions = threeQuestions()
	s.Quiz.Answers = []string{"A", "B", "C"}
	s.ActiveAgent = AgentAssessment

	if err := a.Handle(context.Background(), s, "continue"); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := s.Messages[len(s.Messages)-1].Content; got != quizInviteText {
		t.Errorf("got %q, want the fixed invitation", got)
	}
	if s.ActiveAgent != AgentLecture {
		t.Error("continue after completion should hand control back to the lecture")
	}
}

func TestAssessmentCompletedFreeFormCatchesFailure(t *testing.T) {
	mock := llm.NewMockProvider() // provider fails
	a := newAssessment(mock)
	s := NewSession([]string{"intro"})
	s.Quiz.Questions = threeQuestions()
	s.Quiz.Answers = []string{"A", "B", "C"}

	if err := a.Handle(context.Background(), s, "why was question 2 wrong?"); err != nil {
		t.Fatalf("failures on this path are caught locally, got %v", err)
	}
	msgs := s.Messages
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want apology + closing hint", len(msgs))
	}
	if msgs[0].Content != apologyText {
		t.Errorf("got %q, want the apology", msgs[0].Content)
	}
	if msgs[1].Content != quizClosingHint {
		t.Errorf("got %q, want the closing hint", msgs[1].Content)
	}
}

func TestAssessmentCompletedFreeFormAnswer(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("Because B was the definition given."))
	a := newAssessment(mock)
	s := NewSession([]string{"intro"})
	s.Quiz.Questions = threeQuestions()
	s.Quiz.Answers = []string{"A", "A", "A"}

	if err := a.Handle(context.Background(), s, "why was question 2 wrong?"); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(s.Messages[0].Content, "Because B") {
		t.Errorf("answer missing: %q", s.Messages[0].Content)
	}
	if s.Messages[1].Content != quizClosingHint {
		t.Errorf("closing hint missing, got %q", s.Messages[1].Content)
	}
}
