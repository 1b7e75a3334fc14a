package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/quizgen"
	"github.com/abhisek/coursepilot/internal/retrieval"
)

// Assessment owns the quiz state machine: question generation, answer
// collection, scoring, result presentation, and the post-quiz
// sub-behaviors including restart.
type Assessment struct {
	questions *quizgen.Generator
	provider  llm.Provider
	retriever retrieval.Retriever
}

// NewAssessment creates the assessment engine.
func NewAssessment(questions *quizgen.Generator, provider llm.Provider, retriever retrieval.Retriever) *Assessment {
	return &Assessment{questions: questions, provider: provider, retriever: retriever}
}

// AnswerResult is one question's scoring detail.
type AnswerResult struct {
	Question    quizgen.Question
	Answer      string
	Correct     bool
	Explanation string
}

// Score grades answers against questions by case-insensitive label
// match. A length mismatch fails closed: zero score, no details. No
// partial credit exists; each question is binary.
func Score(questions []quizgen.Question, answers []string) (int, []AnswerResult) {
	if len(questions) != len(answers) {
		return 0, nil
	}
	score := 0
	results := make([]AnswerResult, len(questions))
	for i, q := range questions {
		got := quizgen.NormalizeLabel(answers[i])
		correct := got == quizgen.NormalizeLabel(q.Correct)
		if correct {
			score++
		}
		results[i] = AnswerResult{
			Question:    q,
			Answer:      got,
			Correct:     correct,
			Explanation: q.Explanation,
		}
	}
	return score, results
}

// Handle runs one assessment turn against the learner's input. The
// state machine is driven by a loop so the restart edge re-enters entry
// in the same call without recursion. Only context errors are returned;
// every other failure degrades to a message.
func (a *Assessment) Handle(ctx context.Context, s *SessionState, input string) error {
	for {
		switch s.Quiz.Phase() {
		case QuizNotStarted:
			return a.start(ctx, s)

		case QuizInProgress:
			a.recordAnswer(s, input)
			return nil

		case QuizCompleted:
			if IsRestartQuiz(input) {
				s.Quiz.Reset()
				continue
			}
			return a.afterCompletion(ctx, s, input)
		}
	}
}

// start enters InProgress: generate the question set over the covered
// topics and emit the first question. Question generation never fails a
// turn; with nothing covered yet it degrades to a single fixed question.
func (a *Assessment) start(ctx context.Context, s *SessionState) error {
	qs, err := a.questions.Generate(ctx, s.CoveredTopics())
	if err != nil {
		return err
	}

	s.Quiz.Questions = qs
	s.Quiz.Answers = nil
	s.Quiz.Score = 0
	s.Quiz.InProgress = true

	var b strings.Builder
	fmt.Fprintf(&b, "Quiz time! %d question(s) over what we've covered.\n\n", len(qs))
	writeQuestion(&b, 0, qs[0])
	s.append(AssistantMessage(AgentAssessment, b.String()))
	return nil
}

// recordAnswer handles one InProgress turn. A valid A-D answer is
// appended; anything else re-emits the current question with an error
// prefix and mutates nothing.
func (a *Assessment) recordAnswer(s *SessionState, input string) {
	label := quizgen.NormalizeLabel(input)
	idx := len(s.Quiz.Answers)

	if !quizgen.ValidLabel(label) {
		var b strings.Builder
		b.WriteString("That's not a valid answer. Please reply with A, B, C, or D.\n\n")
		writeQuestion(&b, idx, s.Quiz.Questions[idx])
		s.append(AssistantMessage(AgentAssessment, b.String()))
		return
	}

	s.Quiz.Answers = append(s.Quiz.Answers, label)

	if len(s.Quiz.Answers) < len(s.Quiz.Questions) {
		var b strings.Builder
		writeQuestion(&b, len(s.Quiz.Answers), s.Quiz.Questions[len(s.Quiz.Answers)])
		s.append(AssistantMessage(AgentAssessment, b.String()))
		return
	}

	score, results := Score(s.Quiz.Questions, s.Quiz.Answers)
	s.Quiz.Score = score
	s.Quiz.InProgress = false
	s.append(AssistantMessage(AgentAssessment, renderResults(score, results)))
}

// afterCompletion handles turns that arrive after the results were
// shown: a continue invites the learner back to the lecture; anything
// else is answered as a free-form question. Failures on this path are
// caught here and rendered apologetically rather than propagated.
func (a *Assessment) afterCompletion(ctx context.Context, s *SessionState, input string) error {
	if IsContinue(input) {
		s.append(AssistantMessage(AgentAssessment, quizInviteText))
		s.ActiveAgent = AgentLecture
		return nil
	}

	text, err := a.answerLocally(ctx, input)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		text = apologyText
	}
	s.append(AssistantMessage(AgentAssessment, text))
	s.append(AssistantMessage(AgentAssessment, quizClosingHint))
	return nil
}

func (a *Assessment) answerLocally(ctx context.Context, question string) (string, error) {
	var passages []retrieval.Passage
	if a.retriever != nil {
		var err error
		passages, err = a.retriever.Retrieve(ctx, question, qaContextPassages)
		if err != nil {
			return "", &retrieval.ErrRetrieval{Query: question, Err: err}
		}
	}

	resp, err := a.provider.Generate(llm.WithPurpose(ctx, "qa"), llm.Request{
		System: qaSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: qaPrompt(question, passages)},
		},
		MaxTokens:   1000,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("answer generation: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		text = emptyAnswerText
	}
	return text, nil
}

// writeQuestion renders one question with its labeled options and the
// answer prompt.
func writeQuestion(b *strings.Builder, idx int, q quizgen.Question) {
	fmt.Fprintf(b, "Question %d: %s\n", idx+1, q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(b, "%s. %s\n", quizgen.OptionLabels[i], opt)
	}
	b.WriteString("\nYour answer (A-D)?")
}

// renderResults formats the per-question scoring summary.
func renderResults(score int, results []AnswerResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quiz complete! Score: %d/%d\n", score, len(results))
	for i, r := range results {
		verdict := "✗"
		if r.Correct {
			verdict = "✓"
		}
		fmt.Fprintf(&b, "\n%s Question %d: %s\n", verdict, i+1, r.Question.Text)
		fmt.Fprintf(&b, "  Your answer: %s, correct answer: %s\n", r.Answer, quizgen.NormalizeLabel(r.Question.Correct))
		if r.Explanation != "" {
			fmt.Fprintf(&b, "  %s\n", r.Explanation)
		}
	}
	b.WriteString("\n" + quizClosingHint)
	return b.String()
}
