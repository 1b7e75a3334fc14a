package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursepilot/internal/retrieval"
)

const systemPrompt = `You are a course tutor writing a short quiz to check what a learner retained from the topics just covered.

Rules:
- Write one multiple-choice question per requested slot, each targeting the covered topics.
- Every question has exactly 4 options labeled "A." through "D.", with exactly one correct option.
- Distractors should reflect plausible misunderstandings of the material, not random statements.
- Questions must be answerable from the provided course content alone.
- Keep each question self-contained; do not reference "the text above" or other questions.
- The explanation states in one or two sentences why the correct option is right.
- Answer in the language the course content is written in.`

// buildUserMessage constructs the generation prompt from the covered
// topics and the retrieved course content.
func buildUserMessage(topics []string, passages []retrieval.Passage, n int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write %d questions.\n", n)

	b.WriteString("\nCovered topics:\n")
	for i, t := range topics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}

	b.WriteString("\nCourse content:\n")
	if len(passages) == 0 {
		b.WriteString("(no retrieved content; rely on the topic titles)\n")
	}
	for _, p := range passages {
		b.WriteString(p.Content)
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
