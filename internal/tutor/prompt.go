package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursepilot/internal/retrieval"
)

// Fixed user-facing texts. Components emit these verbatim so repeated
// turns in the same state produce identical output.
const (
	completionText = "That covers every topic in this course. " +
		"You can type 'test' to take a quiz over the material, 'review' to revisit a topic, or 'exit' to finish."

	noQuestionText = "I didn't catch a question there. " +
		"Ask me anything about the material, or type 'continue' to move on."

	emptyAnswerText = "I couldn't put together an answer for that. Try rephrasing your question."

	reviewStubText = "Review is noted. For now, ask me about anything you'd like to revisit, " +
		"or type 'continue' to keep going."

	goodbyeText = "Thanks for studying with me. See you next time!"

	apologyText = "Sorry, I ran into a problem preparing that response. " +
		"Nothing was lost; please try again."

	quizInviteText = "Great, let's get back to the lecture. Type 'continue' when you're ready."

	quizClosingHint = "You can type 'continue' to return to the lecture or 'restart quiz' to try the quiz again."

	welcomeFallback = "Welcome! I'm your course tutor. We'll work through the outline step by step. " +
		"Type 'continue' to begin, or ask me a question at any time."
)

const lectureSystemPrompt = `You are a course tutor delivering a lecture one topic at a time.
Explain the given topic clearly and concretely, using the provided course material when available.
Keep the explanation focused; do not preview later topics. Answer in the language of the material.`

const qaSystemPrompt = `You are a course tutor answering a learner's question.
Ground your answer in the provided course material when available and say so when the material
does not cover the question. Be direct and concrete. Answer in the language of the question.`

const welcomeSystemPrompt = `You are a course tutor greeting a learner at the start of a session.
Briefly introduce the course from its topic outline in two or three sentences, then invite the
learner to begin. Do not lecture yet.`

// guidanceText lists the available next actions after a lecture or
// answer turn. step is the upcoming outline position, 1-based for
// display.
func guidanceText(step, total int) string {
	if step > total {
		return "Type 'continue' for a recap, 'review' to revisit a topic, 'test' for a quiz, or ask me a question."
	}
	return fmt.Sprintf("Next: step %d of %d. Type 'continue' to proceed, 'review' to revisit, "+
		"'test' for a quiz, or just ask me a question.", step, total)
}

// lecturePrompt builds the user message for a topic explanation,
// weighting an unresolved learner question when one exists.
func lecturePrompt(topic, pending string, passages []retrieval.Passage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain the topic: %s\n", topic)
	if pending != "" {
		fmt.Fprintf(&b, "\nThe learner recently asked: %q\nGive extra weight to this question while explaining the topic.\n", pending)
	}
	writePassages(&b, passages)
	return b.String()
}

// qaPrompt builds the user message for a free-form answer.
func qaPrompt(question string, passages []retrieval.Passage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The learner asks: %s\n", question)
	writePassages(&b, passages)
	return b.String()
}

// welcomePrompt builds the user message for the session introduction.
func welcomePrompt(outline []string) string {
	var b strings.Builder
	b.WriteString("Course outline:\n")
	for i, topic := range outline {
		fmt.Fprintf(&b, "%d. %s\n", i+1, topic)
	}
	return b.String()
}

func writePassages(b *strings.Builder, passages []retrieval.Passage) {
	if len(passages) == 0 {
		return
	}
	b.WriteString("\nCourse material:\n")
	for _, p := range passages {
		b.WriteString("---\n")
		b.WriteString(strings.TrimSpace(p.Content))
		b.WriteString("\n")
	}
}
