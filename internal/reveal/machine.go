// Package reveal implements the reveal/cycle state machine of the page and
// the scheduler that runs its deferred effects on the frame clock.
package reveal

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-glimmer/internal/core"
)

// State is the reveal state of the page.
type State int

const (
	StateHidden State = iota
	StateRevealed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Outcome tells the caller which transition a trigger took.
type Outcome int

const (
	OutcomeRevealed Outcome = iota // First reveal
	OutcomeCycled                  // Advance to the next message
)

// Message is one title/subtitle pair.
type Message struct {
	Title    string
	Subtitle string
}

// Burster spawns burst particles. The particle field satisfies it.
type Burster interface {
	Burst(x, y float64, count int)
}

// Options control reveal timing and feedback.
type Options struct {
	RevealDelay    time.Duration // From first interaction to the reveal effect
	FadeDelay      time.Duration // From fade-out to swapping in the next message
	BurstSize      int           // Burst on reveal, when GlowOnReveal is set
	CycleBurstSize int           // Burst on every cycle
	GlowOnReveal   bool
}

// ErrNoMessages is returned when the machine is built without messages.
var ErrNoMessages = errors.New("reveal: message list is empty")

// Machine tracks the one-way Hidden -> Revealed transition and cycles the
// message list afterwards.
type Machine struct {
	opts     Options
	sched    *Scheduler
	burster  Burster
	messages []Message

	state       State
	index       int
	displayed   Message
	opacity     float64 // Target text opacity, 0 while fading out
	shown       bool    // Title and subtitle carry the "shown" style
	hintVisible bool
	revealRuns  int // Times the reveal effect has been applied
}

// NewMachine creates a machine in the Hidden state showing messages[0].
func NewMachine(messages []Message, opts Options, sched *Scheduler, burster Burster) (*Machine, error) {
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}
	list := make([]Message, len(messages))
	copy(list, messages)

	return &Machine{
		opts:        opts,
		sched:       sched,
		burster:     burster,
		messages:    list,
		displayed:   list[0],
		opacity:     1,
		hintVisible: true,
	}, nil
}

// Trigger handles one qualifying interaction at the given clock time and
// resolved point.
func (m *Machine) Trigger(now time.Duration, at core.Point) Outcome {
	if m.state == StateHidden {
		m.state = StateRevealed
		m.sched.After(now, m.opts.RevealDelay, func() {
			m.applyReveal(at)
		})
		return OutcomeRevealed
	}

	m.index = (m.index + 1) % len(m.messages)
	next := m.messages[m.index]

	m.opacity = 0
	m.sched.After(now, m.opts.FadeDelay, func() {
		m.displayed = next
		m.opacity = 1
	})
	m.burst(at, m.opts.CycleBurstSize)
	return OutcomeCycled
}

// applyReveal is the deferred side of the first reveal.
func (m *Machine) applyReveal(at core.Point) {
	m.revealRuns++
	m.hintVisible = false
	m.shown = true
	if m.opts.GlowOnReveal {
		m.burst(at, m.opts.BurstSize)
	}
}

func (m *Machine) burst(at core.Point, count int) {
	if m.burster == nil || count <= 0 {
		return
	}
	m.burster.Burst(at.X, at.Y, count)
}

// SetMessage overwrites the displayed text immediately. The message list
// and index are left alone.
func (m *Machine) SetMessage(title, subtitle string) {
	m.displayed = Message{Title: title, Subtitle: subtitle}
}

// State returns the current reveal state.
func (m *Machine) State() State {
	return m.state
}

// Index returns the current position in the message list.
func (m *Machine) Index() int {
	return m.index
}

// Displayed returns the text currently on screen.
func (m *Machine) Displayed() Message {
	return m.displayed
}

// Opacity returns the target text opacity (0 during a fade-out, 1 otherwise).
func (m *Machine) Opacity() float64 {
	return m.opacity
}

// Shown reports whether the reveal effect has styled the text as visible.
func (m *Machine) Shown() bool {
	return m.shown
}

// HintVisible reports whether the instruction is still displayed.
func (m *Machine) HintVisible() bool {
	return m.hintVisible
}

// Messages returns a copy of the message list.
func (m *Machine) Messages() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}
