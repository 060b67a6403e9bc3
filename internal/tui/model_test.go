package tui

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/edugen/internal/content"
	"github.com/abhisek/edugen/internal/generator"
	"github.com/abhisek/edugen/internal/llm"
	"github.com/abhisek/edugen/internal/pipeline"
	"github.com/abhisek/edugen/internal/reviewer"
)

func testModel() Model {
	return NewModel(func(obs pipeline.Observer) *pipeline.Pipeline {
		g := generator.New(llm.NewMockProvider(), generator.DefaultConfig())
		r := reviewer.New(llm.NewMockProvider(), reviewer.DefaultConfig())
		return pipeline.New(g, r, pipeline.WithObserver(obs))
	})
}

func testRecord() *pipeline.RunRecord {
	bundle := &content.Bundle{
		Explanation: "Magnets attract some metals.",
		Questions: []content.Question{
			{Text: "What do magnets attract?", Options: []string{"Iron", "Wood", "Glass", "Paper"}, Answer: "Iron"},
			{Text: "How many poles does a magnet have?", Options: []string{"Two", "One", "Three", "None"}, Answer: "Two"},
			{Text: "What is a compass needle?", Options: []string{"A magnet", "A battery", "A wire", "A spring"}, Answer: "A magnet"},
			{Text: "Do like poles attract?", Options: []string{"No, they repel", "Yes, always", "Only when wet", "Only in the dark"}, Answer: "No, they repel"},
		},
	}
	return &pipeline.RunRecord{
		ID:                uuid.New(),
		Input:             pipeline.Input{Grade: 3, Topic: "Magnets"},
		InitialGeneration: bundle,
		InitialReview:     &content.ReviewResult{Status: content.StatusPass},
		FinalOutput:       bundle,
		StartedAt:         time.Now().Add(-2 * time.Second),
		FinishedAt:        time.Now(),
	}
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		next, _ := m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		m = next.(Model)
	}
	return m
}

func pressEnter(m Model) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return next.(Model), cmd
}

func TestGradeValidation(t *testing.T) {
	m := testModel()

	// Empty grade rejected.
	m, _ = pressEnter(m)
	if m.phase != phaseGradeInput {
		t.Fatal("empty grade should not advance")
	}

	// Out-of-range grade rejected.
	m = typeString(m, "99")
	m, _ = pressEnter(m)
	if m.phase != phaseGradeInput {
		t.Fatal("grade 99 should not advance")
	}
	if !strings.Contains(m.gradeInput.View(), "between 1 and 12") {
		t.Error("expected range hint in view")
	}
}

func TestGradeToTopicFlow(t *testing.T) {
	m := testModel()
	m = typeString(m, "4")
	m, _ = pressEnter(m)
	if m.phase != phaseTopicInput {
		t.Fatalf("expected topic input phase, got %v", m.phase)
	}
	if m.grade != 4 {
		t.Errorf("expected grade 4, got %d", m.grade)
	}

	// Blank topic rejected.
	m, _ = pressEnter(m)
	if m.phase != phaseTopicInput {
		t.Fatal("blank topic should not advance")
	}

	m = typeString(m, "Magnets")
	m, cmd := pressEnter(m)
	if m.phase != phaseRunning {
		t.Fatalf("expected running phase, got %v", m.phase)
	}
	if cmd == nil {
		t.Fatal("expected run commands")
	}
}

func TestNonDigitIgnoredInGradeInput(t *testing.T) {
	m := testModel()
	m = typeString(m, "a5b")
	if m.gradeInput.Value() != "5" {
		t.Errorf("expected %q, got %q", "5", m.gradeInput.Value())
	}
}

func TestRunDoneShowsReport(t *testing.T) {
	m := testModel()
	m.phase = phaseRunning

	next, _ := m.Update(runDoneMsg{Record: testRecord()})
	m = next.(Model)

	if m.phase != phaseReport {
		t.Fatalf("expected report phase, got %v", m.phase)
	}
	out := m.viewContent()
	if !strings.Contains(out, "Magnets") {
		t.Error("report should show the topic")
	}
	if !strings.Contains(out, "Iron") {
		t.Error("report should show question options")
	}
}

func TestRunDoneWithErrorShowsErrorPhase(t *testing.T) {
	m := testModel()
	m.phase = phaseRunning

	next, _ := m.Update(runDoneMsg{Err: errors.New("provider unavailable")})
	m = next.(Model)

	if m.phase != phaseError {
		t.Fatalf("expected error phase, got %v", m.phase)
	}
	if !strings.Contains(m.viewContent(), "provider unavailable") {
		t.Error("error view should show the cause")
	}
}

func TestStateMsgUpdatesLabel(t *testing.T) {
	m := testModel()
	m.phase = phaseRunning
	m.stateCh = make(chan pipeline.State, 1)

	next, cmd := m.Update(stateMsg(pipeline.StateReviewing))
	m = next.(Model)

	if m.state != pipeline.StateReviewing {
		t.Errorf("expected reviewing state, got %v", m.state)
	}
	if cmd == nil {
		t.Error("expected a re-subscribe command")
	}
	if !strings.Contains(m.viewContent(), "Reviewing") {
		t.Error("view should reflect the reviewing state")
	}
}

func TestReportKeysResetAndQuit(t *testing.T) {
	m := testModel()
	m.phase = phaseReport
	m.record = testRecord()

	next, _ := m.Update(tea.KeyPressMsg{Code: 'n'})
	fresh := next.(Model)
	if fresh.phase != phaseGradeInput {
		t.Errorf("expected reset to grade input, got %v", fresh.phase)
	}

	m.phase = phaseReport
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q'})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestSavedRecordIsValidJSON(t *testing.T) {
	record := testRecord()
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported record is not valid JSON: %v", err)
	}
	for _, key := range []string{"id", "input", "initial_generation", "initial_review", "final_output"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("exported record missing %q", key)
		}
	}
	if _, ok := decoded["refinement"]; ok {
		t.Error("refinement should be omitted when the run was not refined")
	}
}
