package tutor

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/coursepilot/internal/quizgen"
)

// Snapshot is the serializable form of a session. Restoring a snapshot
// reproduces the routing decisions the live session would have made.
type Snapshot struct {
	SessionID   string             `json:"session_id"`
	Outline     []string           `json:"outline"`
	Messages    []Message          `json:"messages"`
	CurrentStep int                `json:"current_step"`
	ActiveAgent AgentID            `json:"active_agent"`
	Questions   []quizgen.Question `json:"test_questions"`
	Answers     []string           `json:"test_answers"`
	Score       int                `json:"test_score"`
	TestMode    bool               `json:"test_mode"`
}

// Snapshot captures the session's current state.
func (s *SessionState) Snapshot() Snapshot {
	return Snapshot{
		SessionID:   s.SessionID,
		Outline:     s.Outline,
		Messages:    s.Messages,
		CurrentStep: s.CurrentStep,
		ActiveAgent: s.ActiveAgent,
		Questions:   s.Quiz.Questions,
		Answers:     s.Quiz.Answers,
		Score:       s.Quiz.Score,
		TestMode:    s.Quiz.InProgress,
	}
}

// Restore rebuilds a session from a snapshot, rejecting snapshots whose
// state violates the session invariants.
func Restore(snap Snapshot) (*SessionState, error) {
	s := &SessionState{
		SessionID:   snap.SessionID,
		Outline:     snap.Outline,
		Messages:    snap.Messages,
		CurrentStep: snap.CurrentStep,
		ActiveAgent: snap.ActiveAgent,
		Quiz: QuizState{
			Questions:  snap.Questions,
			Answers:    snap.Answers,
			Score:      snap.Score,
			InProgress: snap.TestMode,
		},
	}
	if s.ActiveAgent == "" {
		s.ActiveAgent = AgentLecture
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("restore session %s: %w", snap.SessionID, err)
	}
	return s, nil
}

// EncodeSnapshot serializes a snapshot for storage.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// DecodeSnapshot parses stored snapshot bytes.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode session snapshot: %w", err)
	}
	return snap, nil
}
