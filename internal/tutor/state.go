package tutor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/coursepilot/internal/quizgen"
)

// QuizPhase is the assessment state machine position.
type QuizPhase int

const (
	QuizNotStarted QuizPhase = iota
	QuizInProgress
	QuizCompleted
)

// String names the phase for stored turn events.
func (p QuizPhase) String() string {
	switch p {
	case QuizInProgress:
		return "in-progress"
	case QuizCompleted:
		return "completed"
	default:
		return "not-started"
	}
}

// QuizState is the assessment sub-state of a session.
type QuizState struct {
	// Questions is the fixed set generated for the current assessment.
	// Immutable while the assessment runs.
	Questions []quizgen.Question

	// Answers collects the learner's choices in question order.
	// Never longer than Questions.
	Answers []string

	// Score is the count of correct answers, set when the last answer
	// is recorded.
	Score int

	// InProgress is true iff questions exist and not all are answered.
	InProgress bool
}

// Phase derives the state machine position from the stored fields.
func (q QuizState) Phase() QuizPhase {
	switch {
	case len(q.Questions) == 0:
		return QuizNotStarted
	case len(q.Answers) < len(q.Questions):
		return QuizInProgress
	default:
		return QuizCompleted
	}
}

// Reset clears all assessment fields. This is the Restart edge of the
// state machine; the conversation transcript and lecture cursor are
// untouched.
func (q *QuizState) Reset() {
	q.Questions = nil
	q.Answers = nil
	q.Score = 0
	q.InProgress = false
}

// SessionState is the mutable record of one learner's conversation.
// It is exclusively owned by the single worker processing the session's
// current turn; see Manager for the per-session serialization guard.
type SessionState struct {
	SessionID string

	// Outline is the ordered topic list, fixed before the session starts
	// and read-only for its lifetime.
	Outline []string

	// Messages is the append-only conversation transcript.
	Messages []Message

	// CurrentStep is the cursor into Outline: 0 <= CurrentStep <= len(Outline).
	// Monotonically non-decreasing. CurrentStep == len(Outline) is the
	// lecture completion state.
	CurrentStep int

	// ActiveAgent is the component that handled the previous turn. The
	// router consults it to keep post-quiz turns inside the assessment
	// engine.
	ActiveAgent AgentID

	// Quiz is the assessment sub-state.
	Quiz QuizState
}

// NewSession creates a session over the given outline with the cursor at
// zero and an empty transcript.
func NewSession(outline []string) *SessionState {
	return &SessionState{
		SessionID:   uuid.NewString(),
		Outline:     outline,
		ActiveAgent: AgentLecture,
	}
}

// Completed reports whether the lecture has covered every outline topic.
func (s *SessionState) Completed() bool {
	return s.CurrentStep >= len(s.Outline)
}

// CoveredTopics returns the outline prefix the lecture has already presented.
func (s *SessionState) CoveredTopics() []string {
	if s.CurrentStep > len(s.Outline) {
		return s.Outline
	}
	return s.Outline[:s.CurrentStep]
}

// Validate checks the structural invariants of the session state.
func (s *SessionState) Validate() error {
	if s.CurrentStep < 0 || s.CurrentStep > len(s.Outline) {
		return fmt.Errorf("current step %d out of range [0, %d]", s.CurrentStep, len(s.Outline))
	}
	if len(s.Quiz.Answers) > len(s.Quiz.Questions) {
		return fmt.Errorf("quiz has %d answers for %d questions", len(s.Quiz.Answers), len(s.Quiz.Questions))
	}
	wantInProgress := s.Quiz.Phase() == QuizInProgress
	if s.Quiz.InProgress != wantInProgress {
		return fmt.Errorf("quiz in-progress flag %v does not match phase", s.Quiz.InProgress)
	}
	return nil
}

// append adds messages to the transcript.
func (s *SessionState) append(msgs ...Message) {
	s.Messages = append(s.Messages, msgs...)
}
