// Package tui provides a terminal user interface for exploring alankars
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/alankar/pkg/alankar"
)

var (
	saffron   = lipgloss.Color("#FF9933")
	marigold  = lipgloss.Color("#FFC857")
	ivory     = lipgloss.Color("#F5F0E1")
	darkBrown = lipgloss.Color("#3B2417")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(saffron).
			Background(darkBrown).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(ivory).
			Width(9)

	focusedLabelStyle = labelStyle.
				Foreground(saffron).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(marigold).
			PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(saffron).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateForm State = iota
	StateResult
)

const (
	fieldScale = iota
	fieldPattern
	numFields
)

var modes = []alankar.Mode{alankar.ModeBoth, alankar.ModeAscending, alankar.ModeDescending}

// Model represents the TUI model
type Model struct {
	state     State
	inputs    [numFields]textinput.Model
	focus     int
	presets   []alankar.Preset
	preset    int // -1 when the scale is typed by hand
	modeIndex int
	shortLoop bool
	viewport  viewport.Model
	result    *alankar.Result
	err       error
	width     int
	height    int
}

// generatedMsg carries the outcome of a generation run
type generatedMsg struct {
	result *alankar.Result
	err    error
}

// New creates a new TUI model with the given default scale
func New(defaultScale string) Model {
	scale := textinput.New()
	scale.Placeholder = alankar.DefaultScale
	scale.SetValue(defaultScale)
	scale.CharLimit = 32
	scale.Focus()

	pattern := textinput.New()
	pattern.Placeholder = "SGMDN"
	pattern.CharLimit = 64

	return Model{
		state:    StateForm,
		inputs:   [numFields]textinput.Model{scale, pattern},
		presets:  alankar.Presets(),
		preset:   -1,
		viewport: viewport.New(60, 16),
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-8, 20)
		m.viewport.Height = max(msg.Height-12, 5)
		return m, nil

	case generatedMsg:
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.result = msg.result
		m.state = StateResult
		m.viewport.SetContent(renderResult(msg.result))
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateForm:
			return m.updateForm(msg)
		case StateResult:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m.setFocus((m.focus + 1) % numFields), nil
	case "shift+tab", "up":
		return m.setFocus((m.focus + numFields - 1) % numFields), nil
	case "ctrl+p":
		if len(m.presets) > 0 {
			m.preset = (m.preset + 1) % len(m.presets)
			m.inputs[fieldScale].SetValue(m.presets[m.preset].Scale)
		}
		return m, nil
	case "ctrl+d":
		m.modeIndex = (m.modeIndex + 1) % len(modes)
		return m, nil
	case "ctrl+l":
		m.shortLoop = !m.shortLoop
		return m, nil
	case "enter":
		m.err = nil
		return m, m.generate()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus == fieldScale && m.preset >= 0 && m.inputs[fieldScale].Value() != m.presets[m.preset].Scale {
		m.preset = -1
	}
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.state = StateForm
		return m, textinput.Blink
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) setFocus(i int) Model {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return m
}

// generate runs the request described by the form
func (m Model) generate() tea.Cmd {
	opts := alankar.Options{
		Scale:     m.inputs[fieldScale].Value(),
		Pattern:   m.inputs[fieldPattern].Value(),
		Mode:      modes[m.modeIndex],
		ShortLoop: m.shortLoop,
	}
	return func() tea.Msg {
		res, err := alankar.Build(opts)
		return generatedMsg{result: res, err: err}
	}
}

func renderResult(r *alankar.Result) string {
	var buf bytes.Buffer
	if err := alankar.Render(&buf, r); err != nil {
		return err.Error()
	}
	return strings.ReplaceAll(buf.String(), alankar.Separator, separatorStyle.Render(alankar.Separator))
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case StateForm:
		s.WriteString(m.viewForm())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	switch m.state {
	case StateForm:
		s.WriteString(helpStyle.Render("tab: next field • ctrl+p: preset • ctrl+d: direction • ctrl+l: loop • enter: generate • esc: quit"))
	case StateResult:
		s.WriteString(helpStyle.Render("↑/↓: scroll • enter/esc: back • q: quit"))
	}

	return s.String()
}

func (m Model) viewForm() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" ALANKAR "))
	s.WriteString("\n\n")

	labels := [numFields]string{"Scale", "Pattern"}
	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		s.WriteString(style.Render(labels[i]))
		s.WriteString(in.View())
		s.WriteString("\n")
	}

	preset := "custom"
	if m.preset >= 0 {
		preset = m.presets[m.preset].Name
	}
	loop := "long (full octave)"
	if m.shortLoop {
		loop = "short (ends on S)"
	}
	s.WriteString(statusStyle.Render(fmt.Sprintf("preset: %s  direction: %s  loop: %s", preset, modes[m.modeIndex], loop)))

	if m.err != nil {
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s", m.err.Error())))
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf(" %s IN %s ", m.result.Seed.String(), m.result.Scale.String())))
	s.WriteString("\n\n")
	s.WriteString(m.viewport.View())

	return boxStyle.Render(s.String())
}

// Run starts the TUI application
func Run(defaultScale string) error {
	p := tea.NewProgram(New(defaultScale), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
