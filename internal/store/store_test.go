package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"lecture", "qa", "lecture"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-5",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
			RequestBody:  "[user]\nhello",
			ResponseBody: "world",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want limit 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Error("events should come back newest first")
	}
	if events[0].Purpose != "lecture" || events[0].InputTokens != 102 {
		t.Errorf("unexpected newest event %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != "world" {
		t.Errorf("get = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("missing event should return nil")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "lecture", InputTokens: 100, OutputTokens: 50, LatencyMs: 100, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "lecture", InputTokens: 200, OutputTokens: 60, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "qa", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	byPurpose := make(map[string]LLMUsageStat)
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	lec := byPurpose["lecture"]
	if lec.Calls != 2 || lec.InputTokens != 300 || lec.OutputTokens != 110 {
		t.Errorf("lecture stat = %+v", lec)
	}
	if lec.AvgLatencyMs != 200 {
		t.Errorf("lecture avg latency = %d, want 200", lec.AvgLatencyMs)
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(models) != 2 {
		t.Errorf("got %d models, want 2", len(models))
	}
}

func TestTurnEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	turns := []TurnEventData{
		{SessionID: "s1", Agent: "lecture", UserPreview: "continue", MessagesAppended: 3, CurrentStep: 1},
		{SessionID: "s1", Agent: "qa", UserPreview: "what is x?", MessagesAppended: 3, CurrentStep: 1},
		{SessionID: "s2", Agent: "assessment", UserPreview: "test", MessagesAppended: 2, QuizPhase: "in_progress"},
	}
	for i, d := range turns {
		if err := repo.AppendTurn(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryTurns(ctx, QueryOpts{SessionID: "s1"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d turns for s1, want 2", len(got))
	}
	if got[0].Agent != "qa" {
		t.Errorf("newest turn agent = %q, want qa", got[0].Agent)
	}
}

func TestSessionSnapshots(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	rec, err := repo.Load(ctx, "absent")
	if err != nil {
		t.Fatalf("load absent: %v", err)
	}
	if rec != nil {
		t.Fatal("absent session should load nil")
	}

	if err := repo.Save(ctx, "s1", []byte(`{"current_step":0}`)); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := repo.Save(ctx, "s1", []byte(`{"current_step":1}`)); err != nil {
		t.Fatalf("save 2: %v", err)
	}
	if err := repo.Save(ctx, "s2", []byte(`{"current_step":0}`)); err != nil {
		t.Fatalf("save s2: %v", err)
	}

	rec, err = repo.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(rec.Data) != `{"current_step":1}` {
		t.Errorf("load returned %s, want the newest snapshot", rec.Data)
	}

	latest, err := repo.LoadLatest(ctx)
	if err != nil {
		t.Fatalf("load latest: %v", err)
	}
	if latest == nil || latest.SessionID != "s2" {
		t.Errorf("latest = %+v, want session s2", latest)
	}

	sessions, err := repo.Sessions(ctx)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("got %d sessions, want 2", len(sessions))
	}

	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rec, err = repo.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if rec != nil {
		t.Error("deleted session should load nil")
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence %d not greater than %d", seq, prev)
		}
		prev = seq
	}
}
