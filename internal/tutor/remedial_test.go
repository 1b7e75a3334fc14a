package tutor

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/coursepilot/internal/llm"
)

func completedQuiz() QuizState {
	return QuizState{
		Questions: threeQuestions(),
		Answers:   []string{"A", "A", "A"}, // misses second and third
		Score:     1,
	}
}

func TestAnalyzeExtractsMarker(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("Sure.\nFocus on: loops, termination\nHope that helps."))
	r := NewRemedial(mock)
	s := NewSession([]string{"intro"})
	s.Quiz = completedQuiz()

	got := r.Analyze(context.Background(), s)
	if got != "Focus on: loops, termination" {
		t.Errorf("got %q", got)
	}
}

func TestAnalyzeMarkerAbsentUsesPrefix(t *testing.T) {
	long := strings.Repeat("x", 80)
	mock := llm.NewMockProvider(textResponse(long))
	r := NewRemedial(mock)
	s := NewSession([]string{"intro"})
	s.Quiz = completedQuiz()

	got := r.Analyze(context.Background(), s)
	if len([]rune(got)) != 50 {
		t.Errorf("fallback should be the first 50 characters, got %d", len([]rune(got)))
	}
}

func TestAnalyzeCannedDirectives(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *SessionState)
		want  string
	}{
		{
			name:  "wrong answers present",
			setup: func(s *SessionState) { s.Quiz = completedQuiz() },
			want:  directiveWrongAnswers,
		},
		{
			name: "open questions only",
			setup: func(s *SessionState) {
				s.Quiz = QuizState{Questions: threeQuestions(), Answers: []string{"A", "B", "C"}, Score: 3}
				s.append(UserMessage("what about recursion?"))
			},
			want: directiveOpenQuestion,
		},
		{
			name: "nothing recorded",
			setup: func(s *SessionState) {
				s.Quiz = QuizState{Questions: threeQuestions(), Answers: []string{"A", "B", "C"}, Score: 3}
			},
			want: directiveDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider() // generation always fails
			r := NewRemedial(mock)
			s := NewSession([]string{"intro"})
			tt.setup(s)
			if got := r.Analyze(context.Background(), s); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecentQuestionsCapAndCommands(t *testing.T) {
	var msgs []Message
	for _, text := range []string{"q one?", "continue", "q two?", "review", "q three?", "q four?"} {
		msgs = append(msgs, UserMessage(text))
	}

	got := recentQuestions(msgs)
	if len(got) != 3 {
		t.Fatalf("got %d questions, want cap of 3", len(got))
	}
	if got[0] != "q four?" || got[2] != "q two?" {
		t.Errorf("got %v, want newest first with commands excluded", got)
	}
}

func TestRecentQuestionsWindow(t *testing.T) {
	var msgs []Message
	msgs = append(msgs, UserMessage("ancient question?"))
	for i := 0; i < 12; i++ {
		msgs = append(msgs, AssistantMessage(AgentLecture, "filler"))
	}

	if got := recentQuestions(msgs); len(got) != 0 {
		t.Errorf("got %v, messages outside the window should be ignored", got)
	}
}

func TestWrongQuestionsFailClosed(t *testing.T) {
	quiz := QuizState{Questions: threeQuestions(), Answers: []string{"A"}}
	if got := wrongQuestions(quiz); got != nil {
		t.Errorf("length mismatch should yield nothing, got %v", got)
	}
}

func TestAnalyzePromptCarriesBothSummaries(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("Focus on: loops"))
	r := NewRemedial(mock)
	s := NewSession([]string{"intro"})
	s.Quiz = completedQuiz()
	s.append(UserMessage("what is termination?"))

	r.Analyze(context.Background(), s)
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "second?") {
		t.Errorf("missed question absent from the prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "what is termination?") {
		t.Errorf("recent question absent from the prompt:\n%s", prompt)
	}
}
