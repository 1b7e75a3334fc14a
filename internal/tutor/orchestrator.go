package tutor

import (
	"context"
	"errors"
	"strings"

	"github.com/abhisek/coursepilot/internal/llm"
	"github.com/abhisek/coursepilot/internal/quizgen"
	"github.com/abhisek/coursepilot/internal/retrieval"
)

// Signal tells the caller what to do after a turn.
type Signal int

const (
	// SignalNone means the session continues normally.
	SignalNone Signal = iota

	// SignalExit means the learner asked to end the session.
	SignalExit
)

// Orchestrator is the single entry point for turn processing. It routes
// each user turn to one component, stages that component's output on a
// working copy of the session, and commits the copy atomically only on
// success. An abandoned turn leaves the session exactly as it was.
type Orchestrator struct {
	lecture    *Lecture
	qa         *QA
	assessment *Assessment
	remedial   *Remedial
	provider   llm.Provider
}

// NewOrchestrator wires the components over shared generation and
// retrieval collaborators.
func NewOrchestrator(provider llm.Provider, retriever retrieval.Retriever) *Orchestrator {
	questions := quizgen.New(provider, retriever, quizgen.DefaultConfig())
	return &Orchestrator{
		lecture:    NewLecture(provider, retriever),
		qa:         NewQA(provider, retriever),
		assessment: NewAssessment(questions, provider, retriever),
		remedial:   NewRemedial(provider),
		provider:   provider,
	}
}

// ProcessTurn handles one user turn end to end: classification,
// dispatch to exactly one component, and atomic state commit. The
// returned messages are everything appended this turn, the user's own
// message first.
//
// Error policy: context cancellation returns the error with the state
// unmodified. Generation or retrieval failures in the lecture and Q&A
// paths commit only the user message plus a fixed apology, so the
// cursor never advances on a failed turn and the session stays usable.
func (o *Orchestrator) ProcessTurn(ctx context.Context, state *SessionState, userText string) ([]Message, Signal, error) {
	if err := ctx.Err(); err != nil {
		return nil, SignalNone, err
	}

	work := state.clone()
	work.append(UserMessage(userText))

	switch Route(work) {
	case RouteExit:
		work.append(AssistantMessage(AgentWelcome, goodbyeText))
		return commit(state, work), SignalExit, nil

	case RouteReview:
		// Placeholder acknowledgment; the active component is unchanged.
		work.append(AssistantMessage(work.ActiveAgent, reviewStubText))
		return commit(state, work), SignalNone, nil

	case RouteLecture:
		if err := o.lecture.Advance(ctx, work); err != nil {
			return o.recover(ctx, state, userText, AgentLecture, err)
		}
		work.ActiveAgent = AgentLecture
		return commit(state, work), SignalNone, nil

	case RouteQA:
		if err := o.qa.Answer(ctx, work); err != nil {
			return o.recover(ctx, state, userText, AgentQA, err)
		}
		work.ActiveAgent = AgentQA
		return commit(state, work), SignalNone, nil

	default: // RouteAssessment
		finished := work.Quiz.Phase() == QuizCompleted
		work.ActiveAgent = AgentAssessment
		if err := o.assessment.Handle(ctx, work, userText); err != nil {
			return nil, SignalNone, err
		}
		// A continue after the results hands control back to the
		// lecture; the analyzer's directive rides along as a synthetic
		// user message so the next topic gives it extra weight.
		if finished && work.ActiveAgent == AgentLecture {
			directive := o.remedial.Analyze(ctx, work)
			msg := UserMessage(directive)
			msg.AgentType = AgentRemedial
			work.append(msg)
		}
		return commit(state, work), SignalNone, nil
	}
}

// Welcome emits the one-shot course introduction at session start. A
// generation failure degrades to the canned greeting; only context
// errors abort without committing.
func (o *Orchestrator) Welcome(ctx context.Context, state *SessionState) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	work := state.clone()

	text := welcomeFallback
	resp, err := o.provider.Generate(llm.WithPurpose(ctx, "welcome"), llm.Request{
		System: welcomeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: welcomePrompt(work.Outline)},
		},
		MaxTokens:   400,
		Temperature: 0.7,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
	} else if t := strings.TrimSpace(resp.Text()); t != "" {
		text = t
	}

	work.append(AssistantMessage(AgentWelcome, text))
	work.append(AssistantMessage(AgentWelcome, guidanceText(work.CurrentStep+1, len(work.Outline))))
	return commit(state, work), nil
}

// recover implements the apologize-and-keep-state policy for lecture
// and Q&A failures. Context errors pass through untouched; everything
// else commits the user message and an apology only.
func (o *Orchestrator) recover(ctx context.Context, state *SessionState, userText string, agent AgentID, err error) ([]Message, Signal, error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, SignalNone, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, SignalNone, ctxErr
	}

	work := state.clone()
	work.append(UserMessage(userText))
	work.append(AssistantMessage(agent, apologyText))
	return commit(state, work), SignalNone, nil
}

// commit replaces the session with the staged copy and returns the
// messages the turn appended.
func commit(state *SessionState, work *SessionState) []Message {
	appended := work.Messages[len(state.Messages):]
	*state = *work
	return appended
}

// clone copies the session deep enough that mutating the copy never
// touches the original. The outline is shared; it is read-only for the
// session's lifetime.
func (s *SessionState) clone() *SessionState {
	c := *s
	c.Messages = append([]Message(nil), s.Messages...)
	c.Quiz.Questions = append([]quizgen.Question(nil), s.Quiz.Questions...)
	c.Quiz.Answers = append([]string(nil), s.Quiz.Answers...)
	return &c
}
