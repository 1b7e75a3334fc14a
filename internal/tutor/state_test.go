package tutor

import "testing"

func TestQuizPhase(t *testing.T) {
	var q QuizState
	if q.Phase() != QuizNotStarted {
		t.Error("empty quiz should be not-started")
	}

	q.Questions = threeQuestions()
	if q.Phase() != QuizInProgress {
		t.Error("unanswered questions should be in-progress")
	}

	q.Answers = []string{"A", "B", "C"}
	if q.Phase() != QuizCompleted {
		t.Error("fully answered quiz should be completed")
	}

	q.Reset()
	if q.Phase() != QuizNotStarted || q.Score != 0 || q.InProgress {
		t.Errorf("reset should clear everything: %+v", q)
	}
}

func TestCoveredTopics(t *testing.T) {
	s := NewSession([]string{"a", "b", "c"})
	if got := s.CoveredTopics(); len(got) != 0 {
		t.Errorf("nothing covered at start, got %v", got)
	}
	s.CurrentStep = 2
	if got := s.CoveredTopics(); len(got) != 2 || got[1] != "b" {
		t.Errorf("got %v, want the first two topics", got)
	}
	s.CurrentStep = 3
	if !s.Completed() {
		t.Error("cursor at outline length is the completion state")
	}
}

func TestValidate(t *testing.T) {
	s := NewSession([]string{"a"})
	if err := s.Validate(); err != nil {
		t.Fatalf("fresh session should be valid: %v", err)
	}

	s.CurrentStep = 2
	if err := s.Validate(); err == nil {
		t.Error("cursor past the outline should fail")
	}
	s.CurrentStep = 0

	s.Quiz.Questions = threeQuestions()
	s.Quiz.Answers = []string{"A", "B", "C", "D"}
	if err := s.Validate(); err == nil {
		t.Error("more answers than questions should fail")
	}

	s.Quiz.Answers = []string{"A"}
	s.Quiz.InProgress = false
	if err := s.Validate(); err == nil {
		t.Error("in-progress flag must match the phase")
	}
}
