package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
)

// Document is a loaded course source file.
type Document struct {
	// Title is the first top-level heading, or the file name without its
	// extension when the document has no headings.
	Title string

	// Content is the raw text.
	Content string
}

// Section is one heading-delimited slice of the document.
type Section struct {
	Heading string
	Content string
}

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Load reads a markdown or plain-text course document from disk.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("load course document: %w", err)
	}
	content := string(data)
	if strings.TrimSpace(content) == "" {
		return Document{}, fmt.Errorf("course document %s is empty", path)
	}

	title := titleOf(content)
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return Document{Title: title, Content: content}, nil
}

func titleOf(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if m := headingRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return strings.TrimSpace(m[2])
		}
	}
	return ""
}

// Sections splits the document at its headings. A document with no
// headings becomes one section titled after the document.
func (d Document) Sections() []Section {
	var (
		sections []Section
		heading  = d.Title
		body     strings.Builder
	)
	flush := func() {
		text := strings.TrimSpace(body.String())
		if text != "" {
			sections = append(sections, Section{Heading: heading, Content: text})
		}
		body.Reset()
	}

	for _, line := range strings.Split(d.Content, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			heading = strings.TrimSpace(m[2])
			continue
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	flush()

	if len(sections) == 0 {
		sections = append(sections, Section{Heading: d.Title, Content: strings.TrimSpace(d.Content)})
	}
	return sections
}

const (
	passageChunkSize    = 800
	passageChunkOverlap = 100
)

// Passages turns the document into retrieval-sized chunks. Sections are
// the natural unit; oversized sections are re-split with a recursive
// character splitter so no passage dwarfs the rest.
func (d Document) Passages() ([]string, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(passageChunkSize),
		textsplitter.WithChunkOverlap(passageChunkOverlap),
	)

	var passages []string
	for _, sec := range d.Sections() {
		text := sec.Heading + "\n\n" + sec.Content
		if len(text) <= passageChunkSize {
			passages = append(passages, text)
			continue
		}
		parts, err := splitter.SplitText(sec.Content)
		if err != nil {
			return nil, fmt.Errorf("split section %q: %w", sec.Heading, err)
		}
		for _, p := range parts {
			passages = append(passages, sec.Heading+"\n\n"+p)
		}
	}
	return passages, nil
}
