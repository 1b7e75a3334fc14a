package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `# Go Basics

An introduction.

## Variables

Variables hold values.

## Loops

Loops repeat work.
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeDoc(t, "course.md", sampleDoc)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Title != "Go Basics" {
		t.Errorf("title = %q", doc.Title)
	}
}

func TestLoadNoHeadingsUsesFileName(t *testing.T) {
	path := writeDoc(t, "plain-notes.txt", "just some text, no headings")
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Title != "plain-notes" {
		t.Errorf("title = %q, want the file name stem", doc.Title)
	}
}

func TestLoadEmpty(t *testing.T) {
	path := writeDoc(t, "empty.md", "   \n")
	if _, err := Load(path); err == nil {
		t.Error("empty document should be rejected")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/does/not/exist.md"); err == nil {
		t.Error("missing file should error")
	}
}

func TestSections(t *testing.T) {
	doc := Document{Title: "Go Basics", Content: sampleDoc}
	secs := doc.Sections()
	if len(secs) != 3 {
		t.Fatalf("got %d sections, want 3", len(secs))
	}
	if secs[0].Heading != "Go Basics" || !strings.Contains(secs[0].Content, "introduction") {
		t.Errorf("section 0 = %+v", secs[0])
	}
	if secs[1].Heading != "Variables" || secs[2].Heading != "Loops" {
		t.Errorf("headings = %q, %q", secs[1].Heading, secs[2].Heading)
	}
}

func TestSectionsNoHeadings(t *testing.T) {
	doc := Document{Title: "notes", Content: "some plain text"}
	secs := doc.Sections()
	if len(secs) != 1 || secs[0].Heading != "notes" {
		t.Fatalf("got %+v, want one section titled after the document", secs)
	}
}

func TestPassages(t *testing.T) {
	doc := Document{Title: "Go Basics", Content: sampleDoc}
	passages, err := doc.Passages()
	if err != nil {
		t.Fatalf("Passages: %v", err)
	}
	if len(passages) != 3 {
		t.Fatalf("got %d passages, want 3", len(passages))
	}
	if !strings.HasPrefix(passages[1], "Variables\n") {
		t.Errorf("passage 1 should carry its heading: %q", passages[1])
	}
}

func TestPassagesSplitsLongSections(t *testing.T) {
	long := "# Long\n\n" + strings.Repeat("sentence about the topic. ", 100)
	doc := Document{Title: "Long", Content: long}
	passages, err := doc.Passages()
	if err != nil {
		t.Fatalf("Passages: %v", err)
	}
	if len(passages) < 2 {
		t.Fatalf("got %d passages, long sections should be split", len(passages))
	}
	for i, p := range passages {
		if !strings.HasPrefix(p, "Long\n") {
			t.Errorf("passage %d lost its heading prefix", i)
		}
	}
}
