package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursepilot/internal/tutor"
	"github.com/abhisek/coursepilot/internal/ui/theme"
)

func (c *ChatScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(c.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n")

	// Status line, rule, rule above input, input line.
	bodyHeight := height - 4
	if c.errMsg != "" {
		bodyHeight--
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	b.WriteString(c.renderTranscript(width, bodyHeight))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n")

	if c.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + c.errMsg))
		b.WriteString("\n")
	}

	if c.busy {
		b.WriteString(theme.Hint.Render("  Thinking..."))
	} else {
		b.WriteString("  > " + c.input.View())
	}

	return b.String()
}

// renderStatusLine shows the outline cursor and quiz phase.
func (c *ChatScreen) renderStatusLine(width int) string {
	state := c.state

	step := state.CurrentStep
	if step > len(state.Outline) {
		step = len(state.Outline)
	}
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Topic %d/%d", step, len(state.Outline)))

	var rightText string
	switch state.Quiz.Phase() {
	case tutor.QuizInProgress:
		rightText = fmt.Sprintf("Quiz %d/%d", len(state.Quiz.Answers)+1, len(state.Quiz.Questions))
	case tutor.QuizCompleted:
		rightText = fmt.Sprintf("Quiz done %d/%d", state.Quiz.Score, len(state.Quiz.Questions))
	default:
		if state.Completed() {
			rightText = "Lecture complete"
		}
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(rightText)

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 && rightText != "" {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderTranscript renders the visible slice of the conversation, most
// recent lines at the bottom unless the learner scrolled up.
func (c *ChatScreen) renderTranscript(width, height int) string {
	lines := c.transcriptLines(width)

	end := len(lines) - c.scroll
	if end > len(lines) {
		end = len(lines)
	}
	if end < 0 {
		end = 0
	}
	start := end - height
	if start < 0 {
		start = 0
		end = min(height, len(lines))
	}
	visible := lines[start:end]

	var b strings.Builder
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := len(visible); i < height; i++ {
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// transcriptLines wraps every message to the current width.
func (c *ChatScreen) transcriptLines(width int) []string {
	wrapWidth := width - 6
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	var lines []string
	for _, msg := range c.state.Messages {
		block := renderMessage(msg, wrapWidth)
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}
	return lines
}

func renderMessage(msg tutor.Message, width int) string {
	if msg.Role == tutor.RoleUser {
		if msg.AgentType == tutor.AgentRemedial {
			return lipgloss.NewStyle().
				Width(width).
				Foreground(theme.TextDim).
				Italic(true).
				Render("  note: " + msg.Content)
		}
		label := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  You")
		body := lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render("  " + msg.Content)
		return label + "\n" + body
	}

	label := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + agentLabel(msg.AgentType))
	body := lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render("  " + msg.Content)
	return label + "\n" + body
}

func agentLabel(agent tutor.AgentID) string {
	switch agent {
	case tutor.AgentAssessment:
		return "Quiz"
	case tutor.AgentQA:
		return "Tutor (Q&A)"
	default:
		return "Tutor"
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
