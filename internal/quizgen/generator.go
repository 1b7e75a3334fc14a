package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/retrieval"
)

// Config controls the behavior of the Generator.
type Config struct {
	// NumQuestions is how many questions one assessment asks.
	NumQuestions int

	// ContextPassages is the retrieval depth for quiz context.
	ContextPassages int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard quiz generation settings.
func DefaultConfig() Config {
	return Config{
		NumQuestions:    3,
		ContextPassages: 5,
		MaxTokens:       1500,
		Temperature:     0.7,
	}
}

// Generator produces quiz questions from covered topics, using retrieval
// for grounding context and the LLM provider for generation.
type Generator struct {
	provider  llm.Provider
	retriever retrieval.Retriever
	cfg       Config
}

// New creates a Generator.
func New(provider llm.Provider, retriever retrieval.Retriever, cfg Config) *Generator {
	return &Generator{provider: provider, retriever: retriever, cfg: cfg}
}

type quizOutput struct {
	Questions []Question `json:"questions"`
}

// Generate produces the question set for an assessment over the given
// covered topics. Question generation never fails a turn: malformed or
// unavailable generation degrades through a best-effort text parse down
// to the fixed default set. The only returned errors are context
// cancellation, so an abandoned turn commits nothing.
func (g *Generator) Generate(ctx context.Context, topics []string) ([]Question, error) {
	if len(topics) == 0 {
		return []Question{PlaceholderQuestion()}, nil
	}

	passages := g.retrieveContext(ctx, topics)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topics, passages, g.cfg.NumQuestions)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "quiz-gen"), req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		// Schema-invalid output may still be salvageable as plain text.
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			if qs := ParseText(string(invalid.Content)); len(qs) > 0 {
				return qs, nil
			}
		}
		return DefaultQuestions(), nil
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		if qs := ParseText(string(resp.Content)); len(qs) > 0 {
			return qs, nil
		}
		return DefaultQuestions(), nil
	}

	qs := sanitize(out.Questions)
	if len(qs) == 0 {
		return DefaultQuestions(), nil
	}
	if len(qs) > g.cfg.NumQuestions {
		qs = qs[:g.cfg.NumQuestions]
	}
	return qs, nil
}

// retrieveContext pulls quiz grounding passages. Retrieval faults are
// tolerated here; the prompt falls back to topic titles.
func (g *Generator) retrieveContext(ctx context.Context, topics []string) []retrieval.Passage {
	if g.retriever == nil {
		return nil
	}
	query := "key facts about " + strings.Join(topics, ", ")
	passages, err := g.retriever.Retrieve(ctx, query, g.cfg.ContextPassages)
	if err != nil {
		return nil
	}
	return passages
}

// sanitize keeps only structurally valid questions, normalizing the
// correct label along the way.
func sanitize(qs []Question) []Question {
	var out []Question
	for _, q := range qs {
		q.Correct = NormalizeLabel(q.Correct)
		if err := ValidateQuestion(q); err != nil {
			continue
		}
		out = append(out, q)
	}
	return out
}
