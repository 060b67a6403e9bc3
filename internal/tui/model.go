// Package tui is the interactive terminal frontend for the content pipeline.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edugen/internal/pipeline"
	"github.com/abhisek/edugen/internal/ui"
	"github.com/abhisek/edugen/internal/ui/components"
	"github.com/abhisek/edugen/internal/ui/theme"
)

type phase int

const (
	phaseGradeInput phase = iota
	phaseTopicInput
	phaseRunning
	phaseReport
	phaseError
)

const (
	minGrade = 1
	maxGrade = 12
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// exampleTopics seed the topic prompt so a first-time user has somewhere
// to start.
var exampleTopics = []string{
	"Photosynthesis",
	"The water cycle",
	"Fractions",
	"The solar system",
}

// Model is the root Bubble Tea model.
type Model struct {
	newPipeline func(obs pipeline.Observer) *pipeline.Pipeline

	phase      phase
	gradeInput components.TextInput
	topicInput components.TextInput
	grade      int
	topic      string

	stateCh  chan pipeline.State
	state    pipeline.State
	frame    int
	record   *pipeline.RunRecord
	runErr   error
	savedTo  string
	saveErr  error
	width    int
	height   int
}

// NewModel creates the TUI model. newPipeline is called once per run so
// each run gets a fresh observer.
func NewModel(newPipeline func(obs pipeline.Observer) *pipeline.Pipeline) Model {
	return Model{
		newPipeline: newPipeline,
		phase:       phaseGradeInput,
		gradeInput:  components.NewTextInput("Grade (1-12)", true, 2),
		topicInput:  components.NewTextInput("Topic, e.g. "+exampleTopics[0], false, 120),
	}
}

func (m Model) Init() tea.Cmd {
	return m.gradeInput.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case spinnerTickMsg:
		if m.phase != phaseRunning {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, spinnerTick()

	case stateMsg:
		m.state = pipeline.State(msg)
		return m, waitForState(m.stateCh)

	case runDoneMsg:
		if msg.Err != nil {
			m.phase = phaseError
			m.runErr = msg.Err
			return m, nil
		}
		m.phase = phaseReport
		m.record = msg.Record
		return m, nil

	case savedMsg:
		m.savedTo = msg.Path
		m.saveErr = msg.Err
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseGradeInput:
		if msg.String() == "enter" {
			grade, err := m.gradeInput.NumericValue()
			if err != nil || grade < minGrade || grade > maxGrade {
				m.gradeInput.SetError(fmt.Sprintf("enter a grade between %d and %d", minGrade, maxGrade))
				return m, nil
			}
			m.gradeInput.ClearError()
			m.grade = grade
			m.phase = phaseTopicInput
			return m, m.topicInput.Init()
		}

	case phaseTopicInput:
		if msg.String() == "enter" {
			topic := strings.TrimSpace(m.topicInput.Value())
			if topic == "" {
				m.topicInput.SetError("enter a topic")
				return m, nil
			}
			m.topicInput.ClearError()
			m.topic = topic
			return m.startRun()
		}

	case phaseReport:
		switch msg.String() {
		case "n":
			return m.reset(), nil
		case "s":
			return m, saveRecord(m.record)
		case "q":
			return m, tea.Quit
		}

	case phaseError:
		switch msg.String() {
		case "n", "enter":
			return m.reset(), nil
		case "q":
			return m, tea.Quit
		}
	}

	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.phase {
	case phaseGradeInput:
		m.gradeInput, cmd = m.gradeInput.Update(msg)
	case phaseTopicInput:
		m.topicInput, cmd = m.topicInput.Update(msg)
	}
	return m, cmd
}

func (m Model) reset() Model {
	next := NewModel(m.newPipeline)
	next.width = m.width
	next.height = m.height
	return next
}

func (m Model) startRun() (tea.Model, tea.Cmd) {
	m.phase = phaseRunning
	m.state = pipeline.StateInit
	m.stateCh = make(chan pipeline.State, 8)
	m.record = nil
	m.runErr = nil
	m.savedTo = ""
	m.saveErr = nil

	p := m.newPipeline(func(s pipeline.State) {
		m.stateCh <- s
	})

	return m, tea.Batch(
		runPipeline(p, m.grade, m.topic),
		waitForState(m.stateCh),
		spinnerTick(),
	)
}

func runPipeline(p *pipeline.Pipeline, grade int, topic string) tea.Cmd {
	return func() tea.Msg {
		record, err := p.Run(context.Background(), pipeline.Input{Grade: grade, Topic: topic})
		return runDoneMsg{Record: record, Err: err}
	}
}

func waitForState(ch chan pipeline.State) tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-ch)
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func saveRecord(r *pipeline.RunRecord) tea.Cmd {
	return func() tea.Msg {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return savedMsg{Err: err}
		}
		path := fmt.Sprintf("edugen_%s.json", r.ID)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return savedMsg{Err: err}
		}
		return savedMsg{Path: path}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.viewContent())
	return v
}

func (m Model) viewContent() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("edugen"))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render("explanations and quiz questions, graded to fit"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseGradeInput:
		b.WriteString(theme.Body.Render("What grade is this for?"))
		b.WriteString("\n\n")
		b.WriteString(m.gradeInput.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Enter to continue · Ctrl+C to quit"))

	case phaseTopicInput:
		b.WriteString(theme.Body.Render(fmt.Sprintf("Grade %d. What topic should we cover?", m.grade)))
		b.WriteString("\n\n")
		b.WriteString(m.topicInput.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Try: " + strings.Join(exampleTopics, " · ")))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Enter to generate · Ctrl+C to quit"))

	case phaseRunning:
		spinner := spinnerFrames[m.frame]
		b.WriteString(theme.Body.Render(fmt.Sprintf("%s %s", spinner, stateLabel(m.state))))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Ctrl+C to cancel"))

	case phaseReport:
		b.WriteString(ui.RenderRunRecord(m.record, m.width))
		b.WriteString("\n")
		if m.saveErr != nil {
			b.WriteString(theme.Failed.Render("save failed: " + m.saveErr.Error()))
			b.WriteString("\n")
		} else if m.savedTo != "" {
			b.WriteString(theme.Subtitle.Render("saved to " + m.savedTo))
			b.WriteString("\n")
		}
		b.WriteString(theme.Hint.Render("n: new run · s: save JSON · q: quit"))

	case phaseError:
		b.WriteString(theme.Failed.Render("Something went wrong"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(m.runErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("n: try again · q: quit"))
	}

	return b.String()
}

func stateLabel(s pipeline.State) string {
	switch s {
	case pipeline.StateGenerating:
		return "Writing the explanation and questions..."
	case pipeline.StateReviewing:
		return "Reviewing for grade fit and accuracy..."
	case pipeline.StateRefining:
		return "Revising based on reviewer feedback..."
	default:
		return "Starting up..."
	}
}

// Run starts the Bubble Tea program.
func Run(newPipeline func(obs pipeline.Observer) *pipeline.Pipeline) error {
	p := tea.NewProgram(NewModel(newPipeline))
	_, err := p.Run()
	return err
}
