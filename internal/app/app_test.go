package app

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/vishwaszadte/math-expression-generator/exprgen"
	"github.com/vishwaszadte/math-expression-generator/internal/drill"
	"github.com/vishwaszadte/math-expression-generator/internal/store"
)

// fakeEventRepo records appended events in memory.
type fakeEventRepo struct {
	drills  []store.DrillEventData
	answers []store.AnswerEventData
}

func (f *fakeEventRepo) AppendDrillEvent(_ context.Context, data store.DrillEventData) error {
	f.drills = append(f.drills, data)
	return nil
}

func (f *fakeEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	f.answers = append(f.answers, data)
	return nil
}

func (f *fakeEventRepo) AnswerStats(context.Context) ([]store.AnswerStatsRow, error) {
	return nil, nil
}

func testModel(t *testing.T) (Model, *fakeEventRepo) {
	t.Helper()
	repo := &fakeEventRepo{}
	m := newModel(Options{
		Generator:  exprgen.New(exprgen.DefaultConfig(), rand.New(rand.NewSource(1))),
		Events:     repo,
		Difficulty: 1,
	})
	return m, repo
}

func TestNewModelRecordsStartEvent(t *testing.T) {
	m, repo := testModel(t)

	if len(repo.drills) != 1 {
		t.Fatalf("expected 1 drill event, got %d", len(repo.drills))
	}
	if repo.drills[0].Action != "start" {
		t.Errorf("expected start action, got %q", repo.drills[0].Action)
	}
	if repo.drills[0].SessionID != m.state.SessionID {
		t.Error("start event session ID does not match state")
	}
}

func TestQuestionReadyInstallsExpression(t *testing.T) {
	m, _ := testModel(t)

	expr := exprgen.Expression{Text: "3 + 5", Result: 8, Operands: []int{3, 5}}
	next, _ := m.handleQuestionReady(questionReadyMsg{Expr: expr})
	m = next.(Model)

	if m.state.Current == nil || m.state.Current.Text != "3 + 5" {
		t.Fatal("expression was not installed")
	}
	if m.state.Phase != drill.PhaseActive {
		t.Errorf("phase = %q, want %q", m.state.Phase, drill.PhaseActive)
	}
}

func TestQuestionReadyErrorSurfaces(t *testing.T) {
	m, _ := testModel(t)

	next, _ := m.handleQuestionReady(questionReadyMsg{Err: &exprgen.ExhaustedAttemptsError{Attempts: 100}})
	m = next.(Model)

	if m.errMsg == "" {
		t.Fatal("expected error message to be set")
	}
}

func TestSubmitAnswerRecordsEvent(t *testing.T) {
	m, repo := testModel(t)

	expr := exprgen.Expression{Text: "3 + 5", Result: 8, Operands: []int{3, 5}}
	next, _ := m.handleQuestionReady(questionReadyMsg{Expr: expr})
	m = next.(Model)

	m.input.Model.SetValue("8")
	next, _ = m.submitAnswer()
	m = next.(Model)

	if len(repo.answers) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(repo.answers))
	}
	got := repo.answers[0]
	if !got.Correct {
		t.Error("answer should have been scored correct")
	}
	if got.ExpressionText != "3 + 5" || got.ExpectedAnswer != "8" || got.GivenAnswer != "8" {
		t.Errorf("unexpected answer event: %+v", got)
	}
	if got.OperandCount != 2 {
		t.Errorf("operand count = %d, want 2", got.OperandCount)
	}
	if m.state.Phase != drill.PhaseFeedback {
		t.Errorf("phase = %q, want %q", m.state.Phase, drill.PhaseFeedback)
	}
}

func TestSubmitAnswerIgnoresEmptyInput(t *testing.T) {
	m, repo := testModel(t)

	next, _ := m.handleQuestionReady(questionReadyMsg{Expr: exprgen.Expression{Text: "3 + 5", Result: 8}})
	m = next.(Model)

	next, _ = m.submitAnswer()
	m = next.(Model)

	if len(repo.answers) != 0 {
		t.Fatalf("expected no answer events, got %d", len(repo.answers))
	}
	if m.state.Phase != drill.PhaseActive {
		t.Errorf("phase = %q, want %q", m.state.Phase, drill.PhaseActive)
	}
}

func TestEndDrillRecordsEndEvent(t *testing.T) {
	m, repo := testModel(t)

	next, _ := m.handleQuestionReady(questionReadyMsg{Expr: exprgen.Expression{Text: "3 + 5", Result: 8}})
	m = next.(Model)
	m.input.Model.SetValue("8")
	next, _ = m.submitAnswer()
	m = next.(Model)

	msg := m.endDrill()()
	ended, ok := msg.(drillEndedMsg)
	if !ok {
		t.Fatalf("expected drillEndedMsg, got %T", msg)
	}
	if ended.Summary.Answered != 1 || ended.Summary.Correct != 1 {
		t.Errorf("summary = %+v, want 1 answered 1 correct", ended.Summary)
	}

	if len(repo.drills) != 2 {
		t.Fatalf("expected start and end drill events, got %d", len(repo.drills))
	}
	end := repo.drills[1]
	if end.Action != "end" || end.QuestionsServed != 1 || end.CorrectAnswers != 1 {
		t.Errorf("unexpected end event: %+v", end)
	}

	next, _ = m.Update(ended)
	m = next.(Model)
	if m.state.Phase != drill.PhaseSummary {
		t.Errorf("phase = %q, want %q", m.state.Phase, drill.PhaseSummary)
	}
}

func TestNextQuestionProducesValidExpression(t *testing.T) {
	m, _ := testModel(t)

	msg := m.nextQuestion()()
	ready, ok := msg.(questionReadyMsg)
	if !ok {
		t.Fatalf("expected questionReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("unexpected error: %v", ready.Err)
	}
	if ready.Expr.Text == "" {
		t.Fatal("empty expression text")
	}

	start := time.Now()
	m.state.SetQuestion(ready.Expr, start)
	if m.state.QuestionStart != start {
		t.Error("question clock was not restarted")
	}
}
