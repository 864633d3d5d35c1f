package app

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vishwaszadte/math-expression-generator/internal/drill"
	"github.com/vishwaszadte/math-expression-generator/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch {
	case m.errMsg != "":
		content = m.renderError()
	case m.state.Phase == drill.PhaseSummary && m.summary != nil:
		content = m.renderSummary()
	case m.quitConfirm:
		content = m.renderQuitConfirm()
	case m.state.Current == nil:
		content = m.renderLoading()
	case m.state.Phase == drill.PhaseFeedback:
		content = m.renderFeedback()
	default:
		content = m.renderQuestion()
	}

	frame := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	v.SetContent(frame)
	return v
}

// renderQuestion shows the expression, the input, and the score line.
func (m Model) renderQuestion() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("mexpr drill"))
	b.WriteString("\n")
	b.WriteString(m.renderScoreLine())
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(m.state.Current.Text + " = ?")
	b.WriteString(theme.Card.Render(question))
	b.WriteString("\n\n")

	b.WriteString("Answer: " + m.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Enter submit · Esc quit"))

	return b.String()
}

// renderFeedback shows the verdict for the last answer.
func (m Model) renderFeedback() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("mexpr drill"))
	b.WriteString("\n")
	b.WriteString(m.renderScoreLine())
	b.WriteString("\n\n")

	line := m.state.Current.Text + " = " + m.state.Current.FormatResult()
	b.WriteString(theme.Card.Render(theme.Body.Render(line)))
	b.WriteString("\n\n")

	if m.state.LastCorrect {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Not quite — you answered %s", m.state.LastAnswer)))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press any key for the next one"))

	return b.String()
}

// renderSummary shows the end-of-run totals.
func (m Model) renderSummary() string {
	s := m.summary

	var b strings.Builder
	b.WriteString(theme.Title.Render("Drill complete"))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Answered     %d", s.Answered),
		fmt.Sprintf("Correct      %d", s.Correct),
		fmt.Sprintf("Accuracy     %.0f%%", s.Accuracy),
		fmt.Sprintf("Best streak  %d", s.BestStreak),
		fmt.Sprintf("Time         %s", formatDuration(s.Duration)),
	}
	if s.Answered > 0 {
		rows = append(rows, fmt.Sprintf("Avg answer   %.1fs", float64(s.AvgTimeMs)/1000))
	}
	b.WriteString(theme.Card.Render(theme.Body.Render(strings.Join(rows, "\n"))))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press any key to exit"))

	return b.String()
}

func (m Model) renderQuitConfirm() string {
	var b strings.Builder
	b.WriteString(theme.Body.Render("End this drill?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Y end · N keep going"))
	return b.String()
}

func (m Model) renderLoading() string {
	return theme.Hint.Render("Generating expression...")
}

func (m Model) renderError() string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(m.errMsg))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press any key to exit"))
	return b.String()
}

// renderScoreLine shows running score, streak, and elapsed time.
func (m Model) renderScoreLine() string {
	elapsed := time.Since(m.state.StartTime)
	return theme.Hint.Render(fmt.Sprintf(
		"Score %d/%d · Streak %d · %s",
		m.state.TotalCorrect, m.state.TotalAnswered, m.state.Streak, formatDuration(elapsed),
	))
}

func formatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
