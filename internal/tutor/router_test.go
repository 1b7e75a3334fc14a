package tutor

import (
	"testing"

	"github.com/abhisek/coursepilot/internal/quizgen"
)

func quizQuestions(n int) []quizgen.Question {
	qs := make([]quizgen.Question, n)
	for i := range qs {
		qs[i] = quizgen.Question{
			Text:    "q",
			Options: []string{"1", "2", "3", "4"},
			Correct: "A",
		}
	}
	return qs
}

func TestRouteCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RouteTarget
	}{
		{"exit", "exit", RouteExit},
		{"continue", "continue", RouteLecture},
		{"chinese continue", "继续", RouteLecture},
		{"quiz", "test", RouteAssessment},
		{"review", "review", RouteReview},
		{"free-form", "what is recursion?", RouteQA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession([]string{"intro"})
			s.append(UserMessage(tt.input))
			if got := Route(s); got != tt.want {
				t.Errorf("Route = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRouteNoUserMessage(t *testing.T) {
	s := NewSession([]string{"intro"})
	if got := Route(s); got != RouteLecture {
		t.Errorf("empty transcript should resume the lecture, got %v", got)
	}
	s.append(AssistantMessage(AgentLecture, "welcome"))
	if got := Route(s); got != RouteLecture {
		t.Errorf("assistant-only transcript should resume the lecture, got %v", got)
	}
}

func TestRouteQuizInProgress(t *testing.T) {
	s := NewSession([]string{"intro"})
	s.Quiz.Questions = quizQuestions(3)
	s.Quiz.InProgress = true

	for _, input := range []string{"A", "continue", "review", "free text"} {
		s.Messages = []Message{UserMessage(input)}
		if got := Route(s); got != RouteAssessment {
			t.Errorf("Route(%q) mid-quiz = %v, want RouteAssessment", input, got)
		}
	}

	s.Messages = []Message{UserMessage("exit")}
	if got := Route(s); got != RouteExit {
		t.Error("exit should escape even mid-quiz")
	}
}

func TestRouteAfterQuizCompletion(t *testing.T) {
	s := NewSession([]string{"intro"})
	s.Quiz.Questions = quizQuestions(1)
	s.Quiz.Answers = []string{"A"}
	s.ActiveAgent = AgentAssessment

	for _, input := range []string{"continue", "restart quiz", "why was 2 wrong?"} {
		s.Messages = []Message{UserMessage(input)}
		if got := Route(s); got != RouteAssessment {
			t.Errorf("Route(%q) after completion = %v, want RouteAssessment", input, got)
		}
	}

	// Once the engine hands control back, continue goes to the lecture.
	s.ActiveAgent = AgentLecture
	s.Messages = []Message{UserMessage("continue")}
	if got := Route(s); got != RouteLecture {
		t.Errorf("Route = %v, want RouteLecture after handoff", got)
	}
}

func TestRouteDeterministic(t *testing.T) {
	s := NewSession([]string{"intro", "loops"})
	s.append(UserMessage("what is a loop?"))
	first := Route(s)
	for i := 0; i < 10; i++ {
		if got := Route(s); got != first {
			t.Fatalf("call %d returned %v, first call returned %v", i, got, first)
		}
	}
	if len(s.Messages) != 1 || s.CurrentStep != 0 {
		t.Error("routing must not mutate state")
	}
}
