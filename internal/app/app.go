// Package app hosts the interactive drill: a single-screen Bubble Tea
// program that serves synthesized expressions, scores typed answers,
// and records the run in the event store.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/vishwaszadte/math-expression-generator/exprgen"
	"github.com/vishwaszadte/math-expression-generator/internal/drill"
	"github.com/vishwaszadte/math-expression-generator/internal/store"
	"github.com/vishwaszadte/math-expression-generator/internal/ui/components"
)

// Options carries the drill's injected dependencies.
type Options struct {
	Generator   *exprgen.Generator
	Events      store.EventRepo
	Difficulty  int
	NumOperands int // 0 draws a random count per question
}

// Model is the root Bubble Tea model for the drill.
type Model struct {
	gen    *exprgen.Generator
	events store.EventRepo

	state   *drill.State
	summary *drill.Summary
	input   components.AnswerInput

	quitConfirm bool
	errMsg      string
	width       int
	height      int
}

type questionReadyMsg struct {
	Expr exprgen.Expression
	Err  error
}

type drillEndedMsg struct {
	Summary drill.Summary
}

type timerTickMsg time.Time

// newModel creates the model and records the run start.
func newModel(opts Options) Model {
	state := drill.NewState(uuid.New().String(), opts.Difficulty, opts.NumOperands, time.Now())

	_ = opts.Events.AppendDrillEvent(context.Background(), store.DrillEventData{
		SessionID:   state.SessionID,
		Action:      "start",
		Difficulty:  opts.Difficulty,
		NumOperands: opts.NumOperands,
	})

	return Model{
		gen:    opts.Generator,
		events: opts.Events,
		state:  state,
		input:  components.NewAnswerInput("Type your answer...", 20),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.nextQuestion(),
		m.input.Init(),
		tickCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case questionReadyMsg:
		return m.handleQuestionReady(msg)

	case drillEndedMsg:
		m.summary = &msg.Summary
		m.state.Phase = drill.PhaseSummary
		return m, nil

	case timerTickMsg:
		if m.state.Phase == drill.PhaseSummary {
			return m, nil
		}
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forward everything else to the input while answering.
	if m.state.Phase == drill.PhaseActive && !m.quitConfirm {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleQuestionReady(msg questionReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	m.state.SetQuestion(msg.Expr, time.Now())
	m.input = components.NewAnswerInput("Type your answer...", 20)
	return m, m.input.Init()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Error state — any key quits.
	if m.errMsg != "" {
		return m, tea.Quit
	}

	// Summary — any key quits.
	if m.state.Phase == drill.PhaseSummary {
		return m, tea.Quit
	}

	// Quit confirmation dialog.
	if m.quitConfirm {
		switch key {
		case "y", "Y":
			m.quitConfirm = false
			return m, m.endDrill()
		case "n", "N", "esc":
			m.quitConfirm = false
			return m, nil
		}
		return m, nil
	}

	// Feedback overlay — any key moves on.
	if m.state.Phase == drill.PhaseFeedback {
		return m, m.nextQuestion()
	}

	// Active question.
	switch key {
	case "esc":
		m.quitConfirm = true
		return m, nil
	case "enter":
		return m.submitAnswer()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitAnswer scores the typed answer and records the event.
func (m Model) submitAnswer() (tea.Model, tea.Cmd) {
	if m.state.Current == nil {
		return m, nil
	}
	answer := m.input.Value()
	if answer == "" {
		return m, nil
	}

	places := m.gen.Config().DecimalPlaces
	correct, timeMs := m.state.HandleAnswer(answer, places, time.Now())
	m.input.Submit(correct)

	_ = m.events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID:      m.state.SessionID,
		ExpressionText: m.state.Current.Text,
		ExpectedAnswer: m.state.Current.FormatResult(),
		GivenAnswer:    answer,
		Correct:        correct,
		TimeMs:         timeMs,
		Difficulty:     m.state.Difficulty,
		OperandCount:   len(m.state.Current.Operands),
	})

	return m, nil
}

// nextQuestion synthesizes the next expression asynchronously.
func (m Model) nextQuestion() tea.Cmd {
	gen := m.gen
	difficulty := m.state.Difficulty
	numOperands := m.state.NumOperands
	return func() tea.Msg {
		expr, err := gen.GenerateExpression(numOperands, difficulty)
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		return questionReadyMsg{Expr: expr}
	}
}

// endDrill records the end event and builds the summary.
func (m Model) endDrill() tea.Cmd {
	state := m.state
	events := m.events
	return func() tea.Msg {
		summary := drill.BuildSummary(state, time.Now())
		_ = events.AppendDrillEvent(context.Background(), store.DrillEventData{
			SessionID:       state.SessionID,
			Action:          "end",
			Difficulty:      state.Difficulty,
			NumOperands:     state.NumOperands,
			QuestionsServed: summary.Answered,
			CorrectAnswers:  summary.Correct,
			DurationSecs:    int(summary.Duration.Seconds()),
		})
		return drillEndedMsg{Summary: summary}
	}
}

// tickCmd returns a 1-second tick command for the elapsed-time display.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
