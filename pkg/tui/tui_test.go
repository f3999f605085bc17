package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/james-see/alankar/pkg/alankar"
)

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestNew(t *testing.T) {
	m := New("SRGPD")

	if m.state != StateForm {
		t.Errorf("initial state = %v, want StateForm", m.state)
	}
	if got := m.inputs[fieldScale].Value(); got != "SRGPD" {
		t.Errorf("scale input = %q, want SRGPD", got)
	}
	if m.focus != fieldScale {
		t.Errorf("focus = %d, want scale field", m.focus)
	}
	if len(m.presets) == 0 {
		t.Error("presets should be loaded")
	}
}

func TestGenerateFromForm(t *testing.T) {
	m := New("SRGMPDN")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != fieldPattern {
		t.Fatalf("focus = %d after tab, want pattern field", m.focus)
	}
	m = typeText(t, m, "SG")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, m, cmd)

	if m.err != nil {
		t.Fatalf("generation error = %v", m.err)
	}
	if m.state != StateResult {
		t.Fatalf("state = %v, want StateResult", m.state)
	}
	if len(m.result.Ascending) != 8 || len(m.result.Descending) != 8 {
		t.Errorf("section lengths = %d/%d, want 8/8", len(m.result.Ascending), len(m.result.Descending))
	}
	if view := m.View(); !strings.Contains(view, "SG IN SRGMPDN") {
		t.Errorf("result view missing title:\n%s", view)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateForm {
		t.Errorf("state after esc = %v, want StateForm", m.state)
	}
}

func TestGenerateErrorStaysOnForm(t *testing.T) {
	m := New("SRGPD")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "SM")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, m, cmd)

	if m.state != StateForm {
		t.Errorf("state = %v, want StateForm", m.state)
	}
	if m.err == nil {
		t.Fatal("expected an error for a note outside the scale")
	}
	if !strings.Contains(m.View(), "not in scale") {
		t.Error("form view should show the error")
	}
}

func TestToggles(t *testing.T) {
	m := New("SRGMPDN")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.preset != 0 || m.inputs[fieldScale].Value() != m.presets[0].Scale {
		t.Errorf("ctrl+p should select the first preset, got %d %q", m.preset, m.inputs[fieldScale].Value())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if modes[m.modeIndex] != alankar.ModeAscending {
		t.Errorf("mode after ctrl+d = %v, want ascending", modes[m.modeIndex])
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if !m.shortLoop {
		t.Error("ctrl+l should enable the short loop")
	}
	if !strings.Contains(m.View(), "short (ends on S)") {
		t.Error("form view should show the loop mode")
	}
}

func TestQuit(t *testing.T) {
	m := New("SRGMPDN")
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc on the form should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc on the form should return tea.Quit")
	}
}
