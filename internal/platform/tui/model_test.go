package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-glimmer/internal/config"
	"github.com/vovakirdan/tui-glimmer/internal/core"
	"github.com/vovakirdan/tui-glimmer/internal/reveal"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config: config.DefaultConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  25,
			TickRate: 60,
			Seed:     12345,
		},
	})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

// send feeds msg to the model and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestNewModelReservesFooterRow(t *testing.T) {
	m := newTestModel(t)

	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("page screen = %dx%d, expected 80x24", m.screen.Width(), m.screen.Height())
	}
}

func TestNewModelRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Messages = nil

	if _, err := NewModel(Options{Config: cfg, Runtime: core.DefaultConfig()}); err == nil {
		t.Error("expected error for configuration without messages")
	}
}

func TestSpaceReveals(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Session().State() != reveal.StateRevealed {
		t.Error("space should reveal the message")
	}
	if !m.Session().Active() {
		t.Error("interaction should start the active pulse")
	}
}

func TestClickReveals(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.MouseMsg{
		X:      10,
		Y:      5,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if m.Session().State() != reveal.StateRevealed {
		t.Error("left click should reveal the message")
	}
}

func TestClickIgnoredOutsidePage(t *testing.T) {
	m := newTestModel(t)

	// Footer row
	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 24, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	// Release and motion
	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})

	if m.Session().State() != reveal.StateHidden {
		t.Error("only left presses on the page should reveal")
	}
}

func TestFrameAdvancesAndReschedules(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, FrameMsg{})
	if cmd == nil {
		t.Fatal("frame should schedule the next frame")
	}
	if m.Session().Now() != m.config.FrameInterval() {
		t.Errorf("Now() = %v, expected one frame", m.Session().Now())
	}
	if !strings.Contains(m.screen.String(), "Tap anywhere") {
		t.Error("first frame should draw the hint")
	}
}

func TestResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("page screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}

	m, _ = send(t, m, FrameMsg{})
	view := m.View()
	if got := strings.Count(view, "\n"); got != 19 {
		t.Errorf("view has %d line breaks, expected 19", got)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	m, _ = send(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? should collapse the help again")
	}
}

func TestCommandBarSetsMessage(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey(':'))
	if !m.commanding {
		t.Fatal(": should open the command bar")
	}

	m = typeText(t, m, `message "Welcome home" friend`)
	if m.Session().State() != reveal.StateHidden {
		t.Error("typing in the command bar must not reveal")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.commanding {
		t.Error("enter should close the command bar")
	}
	got := m.Session().Displayed()
	if got.Title != "Welcome home" || got.Subtitle != "friend" {
		t.Errorf("Displayed() = %+v, expected the typed message", got)
	}
	if m.statusErr || m.status == "" {
		t.Errorf("status = %q (error %v), expected success", m.status, m.statusErr)
	}
}

func TestCommandBarReportsErrors(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey(':'))
	m = typeText(t, m, "color nope")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.statusErr {
		t.Error("failed command should set an error status")
	}
	if !strings.Contains(m.View(), "nope") {
		t.Error("footer should show the error")
	}
}

func TestCommandBarEscape(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey(':'))
	m = typeText(t, m, "add 10")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.commanding {
		t.Error("esc should close the command bar")
	}
	ambient, _ := m.Session().ParticleCounts()
	if ambient != config.DefaultConfig().Particles.Count {
		t.Errorf("ambient count = %d, escape must not run the command", ambient)
	}
}
