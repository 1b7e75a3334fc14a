package tutor

import (
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewSession([]string{"intro", "loops"})
	s.CurrentStep = 1
	s.ActiveAgent = AgentAssessment
	s.append(UserMessage("test"))
	s.Quiz.Questions = threeQuestions()
	s.Quiz.Answers = []string{"A"}
	s.Quiz.InProgress = true

	data, err := EncodeSnapshot(s.Snapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.SessionID != s.SessionID {
		t.Errorf("session id %q, want %q", restored.SessionID, s.SessionID)
	}
	if restored.CurrentStep != s.CurrentStep || restored.ActiveAgent != s.ActiveAgent {
		t.Errorf("cursor/agent not restored: %+v", restored)
	}
	if len(restored.Quiz.Questions) != 3 || len(restored.Quiz.Answers) != 1 {
		t.Errorf("quiz state not restored: %+v", restored.Quiz)
	}

	// The restored session routes exactly like the live one.
	if got, want := Route(restored), Route(s); got != want {
		t.Errorf("restored route %v, live route %v", got, want)
	}
}

func TestRestoreRejectsInvalidSnapshot(t *testing.T) {
	snap := NewSession([]string{"intro"}).Snapshot()
	snap.CurrentStep = 5
	if _, err := Restore(snap); err == nil {
		t.Error("out-of-range cursor should be rejected")
	}

	snap = NewSession([]string{"intro"}).Snapshot()
	snap.Answers = []string{"A", "B"}
	if _, err := Restore(snap); err == nil {
		t.Error("more answers than questions should be rejected")
	}
}

func TestRestoreDefaultsActiveAgent(t *testing.T) {
	snap := NewSession([]string{"intro"}).Snapshot()
	snap.ActiveAgent = ""
	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.ActiveAgent != AgentLecture {
		t.Errorf("active agent = %q, want lecture default", restored.ActiveAgent)
	}
}

func TestDecodeSnapshotBadJSON(t *testing.T) {
	if _, err := DecodeSnapshot([]byte("{not json")); err == nil {
		t.Error("expected a decode error")
	}
}
