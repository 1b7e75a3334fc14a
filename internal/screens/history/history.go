package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursepilot/internal/router"
	"github.com/abhisek/coursepilot/internal/screen"
	"github.com/abhisek/coursepilot/internal/screens/chat"
	"github.com/abhisek/coursepilot/internal/store"
	"github.com/abhisek/coursepilot/internal/tutor"
	"github.com/abhisek/coursepilot/internal/ui/layout"
	"github.com/abhisek/coursepilot/internal/ui/theme"
)

// entry pairs a stored record with its decoded snapshot. Records that no
// longer decode stay listed so they can be deleted.
type entry struct {
	record store.SessionRecord
	snap   tutor.Snapshot
	broken bool
}

type sessionsLoadedMsg struct {
	Entries []entry
	Err     error
}

type sessionDeletedMsg struct {
	Err error
}

// HistoryScreen lists stored sessions and resumes the selected one.
type HistoryScreen struct {
	orch    *tutor.Orchestrator
	manager *tutor.Manager
	events  store.EventRepo
	snaps   store.SnapshotRepo

	entries  []entry
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(orch *tutor.Orchestrator, manager *tutor.Manager, events store.EventRepo, snaps store.SnapshotRepo) *HistoryScreen {
	return &HistoryScreen{
		orch:    orch,
		manager: manager,
		events:  events,
		snaps:   snaps,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.loadSessions()
}

func (s *HistoryScreen) loadSessions() tea.Cmd {
	return func() tea.Msg {
		records, err := s.snaps.Sessions(context.Background())
		if err != nil {
			return sessionsLoadedMsg{Err: err}
		}

		entries := make([]entry, 0, len(records))
		for _, rec := range records {
			e := entry{record: rec}
			snap, err := tutor.DecodeSnapshot(rec.Data)
			if err != nil {
				e.broken = true
			} else {
				e.snap = snap
			}
			entries = append(entries, e)
		}
		return sessionsLoadedMsg{Entries: entries}
	}
}

func (s *HistoryScreen) Title() string {
	return "Sessions"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Resume"},
		{Key: "D", Description: "Delete"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case sessionDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.loadSessions()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "d", "D":
			return s, s.deleteSelected()
		case "enter":
			return s.resumeSelected()
		}
	}
	return s, nil
}

func (s *HistoryScreen) resumeSelected() (screen.Screen, tea.Cmd) {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return s, nil
	}
	e := s.entries[s.selected]
	if e.broken {
		s.errMsg = "this session can no longer be opened"
		return s, nil
	}

	state, err := tutor.Restore(e.snap)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: chat.New(s.orch, s.manager, state, s.events, s.snaps),
		}
	}
}

func (s *HistoryScreen) deleteSelected() tea.Cmd {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return nil
	}
	sessionID := s.entries[s.selected].record.SessionID
	if s.selected == len(s.entries)-1 && s.selected > 0 {
		s.selected--
	}
	return func() tea.Msg {
		err := s.snaps.Delete(context.Background(), sessionID)
		return sessionDeletedMsg{Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  Error: " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading sessions...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No stored sessions yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, e := range s.entries {
		line := formatEntry(e)
		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatEntry(e entry) string {
	when := e.record.Timestamp.Format("2006-01-02 15:04")
	if e.broken {
		return fmt.Sprintf("%s  (unreadable)  %s", when, shortID(e.record.SessionID))
	}

	topic := "done"
	if e.snap.CurrentStep < len(e.snap.Outline) {
		topic = e.snap.Outline[e.snap.CurrentStep]
	}
	return fmt.Sprintf("%s  topic %d/%d (%s)  %d messages  %s",
		when,
		e.snap.CurrentStep, len(e.snap.Outline),
		topic,
		len(e.snap.Messages),
		shortID(e.record.SessionID),
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
