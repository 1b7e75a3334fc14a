package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/quizgen"
)

const (
	// focusMarker is the token the remedial prompt asks the model to put
	// in front of its keywords.
	focusMarker = "Focus on:"

	remedialScanWindow  = 10
	remedialMaxQuestion = 3
	remedialPreviewLen  = 60
	remedialFallbackLen = 50
)

// Canned directives used when generation is unavailable, picked by what
// data the quiz left behind.
const (
	directiveWrongAnswers = "Let's go over the topics behind the quiz questions you missed before moving on."
	directiveOpenQuestion = "Let's come back to the questions you raised earlier before moving on."
	directiveDefault      = "Let's continue to the next topic and reinforce the fundamentals as we go."
)

// Remedial inspects a finished quiz plus recent unresolved questions
// and produces a short emphasis directive for the next lecture turn.
type Remedial struct {
	provider llm.Provider
}

// NewRemedial creates the remedial analyzer.
func NewRemedial(provider llm.Provider) *Remedial {
	return &Remedial{provider: provider}
}

// Analyze reads the quiz results and the recent transcript and returns
// a one-line focus directive. It never fails: any generation problem
// falls back to a canned directive chosen by the available data.
func (r *Remedial) Analyze(ctx context.Context, s *SessionState) string {
	wrong := wrongQuestions(s.Quiz)
	open := recentQuestions(s.Messages)

	resp, err := r.provider.Generate(llm.WithPurpose(ctx, "remedial"), llm.Request{
		System: remedialSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: remedialPrompt(wrong, open, s.Quiz.Score, len(s.Quiz.Questions))},
		},
		MaxTokens:   200,
		Temperature: 0.3,
	})
	if err != nil {
		return cannedDirective(wrong, open)
	}

	return extractDirective(resp.Text(), wrong, open)
}

// extractDirective pulls the keywords after the focus marker; with no
// marker it degrades to a prefix of the raw response, and with nothing
// usable at all it takes the canned route.
func extractDirective(text string, wrong, open []string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return cannedDirective(wrong, open)
	}
	if i := strings.Index(text, focusMarker); i >= 0 {
		keywords := strings.TrimSpace(text[i+len(focusMarker):])
		if nl := strings.IndexByte(keywords, '\n'); nl >= 0 {
			keywords = strings.TrimSpace(keywords[:nl])
		}
		if keywords != "" {
			return focusMarker + " " + keywords
		}
	}
	return truncate(text, remedialFallbackLen)
}

func cannedDirective(wrong, open []string) string {
	switch {
	case len(wrong) > 0:
		return directiveWrongAnswers
	case len(open) > 0:
		return directiveOpenQuestion
	default:
		return directiveDefault
	}
}

// wrongQuestions lists the question texts the learner missed. Aligned
// by index; a length mismatch yields nothing, mirroring fail-closed
// scoring.
func wrongQuestions(quiz QuizState) []string {
	if len(quiz.Questions) != len(quiz.Answers) {
		return nil
	}
	var out []string
	for i, q := range quiz.Questions {
		if quizgen.NormalizeLabel(quiz.Answers[i]) != quizgen.NormalizeLabel(q.Correct) {
			out = append(out, q.Text)
		}
	}
	return out
}

// recentQuestions collects non-command user turns from the tail of the
// transcript, newest first, capped and previewed.
func recentQuestions(messages []Message) []string {
	start := len(messages) - remedialScanWindow
	if start < 0 {
		start = 0
	}
	var out []string
	for i := len(messages) - 1; i >= start && len(out) < remedialMaxQuestion; i-- {
		m := messages[i]
		if m.Role != RoleUser || isBlank(m.Content) || IsCommand(m.Content) {
			continue
		}
		out = append(out, truncate(strings.TrimSpace(m.Content), remedialPreviewLen))
	}
	return out
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

const remedialSystemPrompt = `You are a course tutor deciding what to emphasize next.
Given quiz mistakes and open learner questions, reply with one line in the form
"Focus on: keyword1, keyword2" naming one or two focus keywords. No other text.`

// remedialPrompt summarizes the two data sources for the model.
func remedialPrompt(wrong, open []string, score, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quiz score: %d/%d\n", score, total)
	if len(wrong) > 0 {
		b.WriteString("\nQuestions answered incorrectly:\n")
		for _, q := range wrong {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	if len(open) > 0 {
		b.WriteString("\nRecent learner questions:\n")
		for _, q := range open {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	if len(wrong) == 0 && len(open) == 0 {
		b.WriteString("\nNo mistakes and no open questions were recorded.\n")
	}
	return b.String()
}
