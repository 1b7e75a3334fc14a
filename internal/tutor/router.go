package tutor

// RouteTarget is the router's decision for one turn.
type RouteTarget int

const (
	RouteLecture RouteTarget = iota
	RouteQA
	RouteAssessment
	RouteReview
	RouteExit
)

// Route picks the component that handles the current turn. It reads the
// most recent user message from the transcript; no user message at all
// resumes the lecture. Routing never mutates state and is deterministic
// for a given transcript tail and quiz position.
//
// While a quiz runs, and while the assessment engine handled the
// previous turn with a completed quiz, all non-exit input stays with the
// assessment engine, which owns answer collection and the post-quiz
// sub-behaviors.
func Route(s *SessionState) RouteTarget {
	text, ok := LastUserMessage(s.Messages)
	if !ok {
		return RouteLecture
	}

	cmd := Classify(text)
	if cmd == CommandExit {
		return RouteExit
	}

	if s.Quiz.Phase() == QuizInProgress {
		return RouteAssessment
	}
	if s.ActiveAgent == AgentAssessment && s.Quiz.Phase() == QuizCompleted {
		return RouteAssessment
	}

	switch cmd {
	case CommandContinue:
		return RouteLecture
	case CommandQuiz:
		return RouteAssessment
	case CommandReview:
		return RouteReview
	default:
		return RouteQA
	}
}
