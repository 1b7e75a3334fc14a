package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/coursepilot/internal/llm"
)

func TestDeriveOutlineFromProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topics": ["Variables", "Loops", "Functions"]}`),
	})
	doc := Document{Title: "Go Basics", Content: sampleDoc}

	topics, err := DeriveOutline(context.Background(), mock, doc)
	if err != nil {
		t.Fatalf("DeriveOutline: %v", err)
	}
	if len(topics) != 3 || topics[0] != "Variables" {
		t.Errorf("topics = %v", topics)
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "course-outline" {
		t.Error("request should carry the outline schema")
	}
}

func TestDeriveOutlineFallsBackToHeadings(t *testing.T) {
	mock := llm.NewMockProvider() // provider fails
	doc := Document{Title: "Go Basics", Content: sampleDoc}

	topics, err := DeriveOutline(context.Background(), mock, doc)
	if err != nil {
		t.Fatalf("DeriveOutline: %v", err)
	}
	if len(topics) != 2 || topics[0] != "Variables" || topics[1] != "Loops" {
		t.Errorf("topics = %v, want the sub-headings", topics)
	}
}

func TestDeriveOutlineNilProvider(t *testing.T) {
	doc := Document{Title: "Go Basics", Content: sampleDoc}
	topics, err := DeriveOutline(context.Background(), nil, doc)
	if err != nil {
		t.Fatalf("DeriveOutline: %v", err)
	}
	if len(topics) != 2 {
		t.Errorf("topics = %v", topics)
	}
}

func TestDeriveOutlineContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mock := llm.NewMockProvider(llm.MockResponse{Err: ctx.Err()})
	doc := Document{Title: "Go Basics", Content: sampleDoc}

	if _, err := DeriveOutline(ctx, mock, doc); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestHeadingOutlineNoHeadings(t *testing.T) {
	doc := Document{Title: "notes", Content: "plain text only"}
	if _, err := HeadingOutline(doc); !errors.Is(err, ErrNoOutline) {
		t.Fatalf("got %v, want ErrNoOutline", err)
	}
}
