package chat

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursepilot/internal/screen"
	"github.com/abhisek/coursepilot/internal/store"
	"github.com/abhisek/coursepilot/internal/tutor"
	"github.com/abhisek/coursepilot/internal/ui/components"
	"github.com/abhisek/coursepilot/internal/ui/layout"
)

const (
	// turnTimeout bounds one turn's LLM calls end to end.
	turnTimeout = 90 * time.Second

	// previewRunes limits the user text stored on turn events.
	previewRunes = 80
)

// ChatScreen implements screen.Screen for an active tutoring conversation.
// Turn processing runs in a command so the UI stays responsive; session
// state only changes when a turn commits, so a timed-out or cancelled
// turn leaves the transcript exactly as it was.
type ChatScreen struct {
	orch    *tutor.Orchestrator
	manager *tutor.Manager
	state   *tutor.SessionState
	events  store.EventRepo
	snaps   store.SnapshotRepo

	input  components.TextInput
	busy   bool
	scroll int // lines scrolled up from the transcript bottom
	errMsg string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen over an existing session. The session may be
// freshly created or restored from a snapshot.
func New(orch *tutor.Orchestrator, manager *tutor.Manager, state *tutor.SessionState, events store.EventRepo, snaps store.SnapshotRepo) *ChatScreen {
	return &ChatScreen{
		orch:    orch,
		manager: manager,
		state:   state,
		events:  events,
		snaps:   snaps,
		input:   components.NewTextInput("Ask a question, or press Enter to continue...", false, 0),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{c.input.Init()}
	if len(c.state.Messages) == 0 {
		c.busy = true
		cmds = append(cmds, c.welcomeCmd())
	}
	return tea.Batch(cmds...)
}

func (c *ChatScreen) Title() string {
	return "Tutor"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.busy {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Scroll"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

// welcomeDoneMsg carries the result of the opening welcome turn.
type welcomeDoneMsg struct {
	Err error
}

// turnDoneMsg carries the result of one processed user turn.
type turnDoneMsg struct {
	Messages []tutor.Message
	Signal   tutor.Signal
	Err      error
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case welcomeDoneMsg:
		c.busy = false
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
		}
		return c, nil

	case turnDoneMsg:
		return c.handleTurnDone(msg)

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if !c.busy {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	return c, nil
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up":
		c.scroll++
		return c, nil
	case "down":
		if c.scroll > 0 {
			c.scroll--
		}
		return c, nil
	case "pgup":
		c.scroll += 10
		return c, nil
	case "pgdown":
		c.scroll -= 10
		if c.scroll < 0 {
			c.scroll = 0
		}
		return c, nil
	case "enter":
		if c.busy {
			return c, nil
		}
		text := c.input.Value()
		c.input.Model.SetValue("")
		c.busy = true
		c.errMsg = ""
		c.scroll = 0
		return c, c.turnCmd(text)
	}

	if !c.busy {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	return c, nil
}

func (c *ChatScreen) handleTurnDone(msg turnDoneMsg) (screen.Screen, tea.Cmd) {
	c.busy = false
	if msg.Err != nil {
		c.errMsg = msg.Err.Error()
		return c, nil
	}
	if msg.Signal == tutor.SignalExit {
		return c, tea.Quit
	}
	return c, nil
}

// turnCmd processes one user turn off the UI goroutine. The manager
// serializes turns per session, so a queued duplicate waits for the
// committed state of the one before it.
func (c *ChatScreen) turnCmd(text string) tea.Cmd {
	orch, manager, state := c.orch, c.manager, c.state
	events, snaps := c.events, c.snaps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()

		var (
			msgs []tutor.Message
			sig  tutor.Signal
		)
		err := manager.Do(state.SessionID, func() error {
			var err error
			msgs, sig, err = orch.ProcessTurn(ctx, state, text)
			return err
		})
		if err != nil {
			return turnDoneMsg{Err: err}
		}

		persistTurn(ctx, events, snaps, state, text, len(msgs))
		return turnDoneMsg{Messages: msgs, Signal: sig}
	}
}

// welcomeCmd produces the opening message for a brand-new session.
func (c *ChatScreen) welcomeCmd() tea.Cmd {
	orch, manager, state := c.orch, c.manager, c.state
	events, snaps := c.events, c.snaps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()

		var msgs []tutor.Message
		err := manager.Do(state.SessionID, func() error {
			var err error
			msgs, err = orch.Welcome(ctx, state)
			return err
		})
		if err != nil {
			return welcomeDoneMsg{Err: err}
		}

		persistTurn(ctx, events, snaps, state, "", len(msgs))
		return welcomeDoneMsg{}
	}
}

// persistTurn saves a snapshot and appends a turn event after a commit.
// Persistence failures do not fail the turn; the conversation already
// happened and the next commit will snapshot the same state again.
func persistTurn(ctx context.Context, events store.EventRepo, snaps store.SnapshotRepo, state *tutor.SessionState, userText string, appended int) {
	if data, err := tutor.EncodeSnapshot(state.Snapshot()); err == nil {
		_ = snaps.Save(ctx, state.SessionID, data)
	}
	_ = events.AppendTurn(ctx, store.TurnEventData{
		SessionID:        state.SessionID,
		Agent:            string(state.ActiveAgent),
		UserPreview:      preview(userText),
		MessagesAppended: appended,
		CurrentStep:      state.CurrentStep,
		QuizPhase:        state.Quiz.Phase().String(),
	})
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes])
}
