package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursepilot/internal/router"
	"github.com/abhisek/coursepilot/internal/screen"
	"github.com/abhisek/coursepilot/internal/screens/chat"
	"github.com/abhisek/coursepilot/internal/screens/history"
	"github.com/abhisek/coursepilot/internal/store"
	"github.com/abhisek/coursepilot/internal/tutor"
	"github.com/abhisek/coursepilot/internal/ui/components"
	"github.com/abhisek/coursepilot/internal/ui/theme"
)

// HomeScreen is the course landing screen.
type HomeScreen struct {
	menu        components.Menu
	courseTitle string
	outline     []string
	lastStep    int
	hasResume   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The outline is the course plan new
// sessions start from; the most recent stored session, if any, backs
// the resume entry.
func New(orch *tutor.Orchestrator, manager *tutor.Manager, courseTitle string, outline []string, events store.EventRepo, snaps store.SnapshotRepo) *HomeScreen {
	h := &HomeScreen{
		courseTitle: courseTitle,
		outline:     outline,
	}

	// Peek at the latest snapshot for the resume entry.
	var resumeState *tutor.SessionState
	if rec, err := snaps.LoadLatest(context.Background()); err == nil && rec != nil {
		if snap, err := tutor.DecodeSnapshot(rec.Data); err == nil {
			if state, err := tutor.Restore(snap); err == nil {
				resumeState = state
				h.lastStep = state.CurrentStep
				h.hasResume = true
			}
		}
	}

	items := []components.MenuItem{
		{Label: "New session", Action: func() tea.Cmd {
			state := tutor.NewSession(outline)
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chat.New(orch, manager, state, events, snaps),
				}
			}
		}},
		{Label: "Resume last session", Disabled: resumeState == nil, Action: func() tea.Cmd {
			if resumeState == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chat.New(orch, manager, resumeState, events, snaps),
				}
			}
		}},
		{Label: "Past sessions", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: history.New(orch, manager, events, snaps),
				}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("CoursePilot")
	sections = append(sections, title)

	course := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(h.courseTitle)
	sections = append(sections, course)

	stats := fmt.Sprintf("%d topics", len(h.outline))
	if h.hasResume {
		stats = fmt.Sprintf("%d topics · last session at topic %d", len(h.outline), h.lastStep)
	}
	sections = append(sections, theme.Subtitle.Width(width).Render(stats))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
