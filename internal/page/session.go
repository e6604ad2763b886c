// Package page ties the particle field and the reveal machine into one
// session: the single owner of all mutable page state, driven one frame at a
// time by the platform layer.
package page

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-glimmer/internal/config"
	"github.com/vovakirdan/tui-glimmer/internal/core"
	"github.com/vovakirdan/tui-glimmer/internal/field"
	"github.com/vovakirdan/tui-glimmer/internal/reveal"
)

// rippleMaxCells is how far a ripple ring grows, in cell widths.
const rippleMaxCells = 10

// ripple is a transient ring centered on an interaction point.
type ripple struct {
	id     int
	center core.Point
	born   time.Duration
}

// Session holds everything the page mutates: particles, reveal state,
// scheduled effects, the active pulse and ripples.
type Session struct {
	cfg    config.Config
	theme  Theme
	logger *log.Logger

	field   *field.Field
	machine *reveal.Machine
	sched   *reveal.Scheduler

	now   time.Duration // Session clock, advanced one frame interval per Frame
	frame time.Duration

	cols, rows int
	cellW      int
	cellH      int

	textAlpha float64 // Rendered text opacity, easing toward the machine target
	active    bool
	ripples   []ripple
	rippleSeq int
}

// New builds a session for a screen of rt.ScreenW × rt.ScreenH cells.
// A nil logger discards output.
func New(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme, err := ParseTheme(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:    cfg,
		theme:  theme,
		logger: logger,
		sched:  reveal.NewScheduler(),
		frame:  rt.FrameInterval(),
		cols:   rt.ScreenW,
		rows:   rt.ScreenH,
		cellW:  cfg.Layout.CellWidth,
		cellH:  cfg.Layout.CellHeight,
	}

	w, h := s.surfaceSize()
	s.field = field.New(w, h, field.Params{
		MaxSpeed: cfg.Particles.MaxSpeed,
		Size:     cfg.Particles.Size,
		Decay:    cfg.Animation.BurstDecay,
		Color:    theme.Particle,
	}, rt.Seed)
	s.field.Initialize(cfg.Particles.Count)

	messages := make([]reveal.Message, len(cfg.Messages))
	for i, m := range cfg.Messages {
		messages[i] = reveal.Message{Title: m.Title, Subtitle: m.Subtitle}
	}
	s.machine, err = reveal.NewMachine(messages, reveal.Options{
		RevealDelay:    cfg.Animation.RevealDelay,
		FadeDelay:      cfg.Animation.FadeDelay,
		BurstSize:      cfg.Animation.BurstSize,
		CycleBurstSize: cfg.Animation.CycleBurstSize,
		GlowOnReveal:   cfg.Particles.GlowOnReveal,
	}, s.sched, s.field)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	return s, nil
}

// surfaceSize returns the virtual pixel size of the current screen.
func (s *Session) surfaceSize() (w, h float64) {
	return float64(s.cols * s.cellW), float64(s.rows * s.cellH)
}

// Resize resynchronizes the surface with a cols × rows screen and
// regenerates the ambient field from scratch. Bursts in flight are lost.
func (s *Session) Resize(cols, rows int) {
	s.cols, s.rows = core.Max(cols, 0), core.Max(rows, 0)
	w, h := s.surfaceSize()
	s.field.Resize(w, h)
	s.field.Initialize(s.cfg.Particles.Count)
	s.logger.Debug("resized", "cols", s.cols, "rows", s.rows, "width", w, "height", h)
}

// Interact handles a qualifying interaction: it drives the reveal machine
// and starts the active pulse and, if enabled, a ripple.
func (s *Session) Interact(ev reveal.Event) reveal.Outcome {
	w, h := s.surfaceSize()
	at := reveal.ResolvePoint(ev, w, h)

	outcome := s.machine.Trigger(s.now, at)
	switch outcome {
	case reveal.OutcomeRevealed:
		s.logger.Info("revealed", "source", ev.Source, "x", at.X, "y", at.Y)
	case reveal.OutcomeCycled:
		s.logger.Info("cycled", "source", ev.Source, "index", s.machine.Index())
	}

	s.active = true
	s.sched.After(s.now, s.cfg.Animation.PulseDuration, func() {
		s.active = false
	})

	if s.cfg.Animation.Ripple {
		s.rippleSeq++
		id := s.rippleSeq
		s.ripples = append(s.ripples, ripple{id: id, center: at, born: s.now})
		s.sched.After(s.now, s.cfg.Animation.RippleDuration, func() {
			s.removeRipple(id)
		})
	}

	return outcome
}

func (s *Session) removeRipple(id int) {
	for i, r := range s.ripples {
		if r.id == id {
			s.ripples = append(s.ripples[:i], s.ripples[i+1:]...)
			return
		}
	}
}

// Step advances the session clock by one frame and runs due effects.
func (s *Session) Step() {
	s.now += s.frame
	s.sched.Run(s.now)
	s.easeText()
}

// easeText moves the rendered text opacity toward its target so that fades
// take about one fade delay.
func (s *Session) easeText() {
	target := 0.0
	if s.machine.Shown() {
		target = s.machine.Opacity()
	}

	fade := s.cfg.Animation.FadeDelay
	if fade <= 0 {
		s.textAlpha = target
		return
	}
	delta := float64(s.frame) / float64(fade)
	if s.textAlpha < target {
		s.textAlpha = min(s.textAlpha+delta, target)
	} else {
		s.textAlpha = max(s.textAlpha-delta, target)
	}
}

// Frame runs one display refresh: Step, then clear dst and draw the
// particle field, ripples, container and text onto it.
func (s *Session) Frame(dst *core.Screen) {
	s.Step()

	dst.Clear()
	canvas := core.NewCanvas(dst, s.cellW, s.cellH, s.theme.Background)
	s.field.AdvanceAndRender(canvas)
	s.drawRipples(canvas)
	s.drawChrome(dst)
}

func (s *Session) drawRipples(canvas *core.Canvas) {
	duration := s.cfg.Animation.RippleDuration
	if duration <= 0 {
		return
	}
	maxRadius := float64(rippleMaxCells * s.cellW)
	for _, r := range s.ripples {
		progress := core.ClampF(float64(s.now-r.born)/float64(duration), 0, 1)
		canvas.StrokeCircle(r.center.X, r.center.Y, maxRadius*progress, 1-progress, s.theme.Accent)
	}
}

// drawChrome draws the container border and the text elements.
func (s *Session) drawChrome(dst *core.Screen) {
	layout := ComputeLayout(dst.Width(), dst.Height())

	border := s.theme.Border
	if s.active {
		border = s.theme.Accent
	}
	dst.DrawBox(layout.Container, border)

	if s.machine.HintVisible() {
		dst.DrawTextCentered(layout.Hint.Y, s.cfg.Page.Hint, s.theme.Hint, false)
	}

	if s.machine.Shown() && s.textAlpha > 0 {
		msg := s.machine.Displayed()
		bg := s.theme.Background
		dst.DrawTextCentered(layout.Title.Y, msg.Title, s.theme.Title.Fade(bg, s.textAlpha), true)
		dst.DrawTextCentered(layout.Subtitle.Y, msg.Subtitle, s.theme.Subtitle.Fade(bg, s.textAlpha), false)
	}
}

// SetMessage overwrites the displayed text immediately.
func (s *Session) SetMessage(title, subtitle string) {
	s.machine.SetMessage(title, subtitle)
	s.logger.Info("message set", "title", title, "subtitle", subtitle)
}

// SetParticleColor changes the fill color of every subsequent particle draw.
// An invalid color leaves the current color in place.
func (s *Session) SetParticleColor(spec string) error {
	c, err := core.ParseColor(spec)
	if err != nil {
		s.logger.Warn("particle color rejected", "spec", spec, "error", err)
		return err
	}
	s.field.SetColor(c)
	s.logger.Info("particle color set", "color", string(c))
	return nil
}

// ErrNegativeCount is returned by AddParticles for a negative count.
var ErrNegativeCount = errors.New("page: particle count must not be negative")

// AddParticles appends count ambient particles to the live field.
func (s *Session) AddParticles(count int) error {
	if count < 0 {
		return ErrNegativeCount
	}
	s.field.AddParticles(count)
	s.logger.Info("particles added", "count", count, "total", s.field.Len())
	return nil
}

// State returns the reveal state.
func (s *Session) State() reveal.State {
	return s.machine.State()
}

// MessageIndex returns the current position in the message list.
func (s *Session) MessageIndex() int {
	return s.machine.Index()
}

// Displayed returns the message currently on screen.
func (s *Session) Displayed() reveal.Message {
	return s.machine.Displayed()
}

// HintVisible reports whether the instruction is still shown.
func (s *Session) HintVisible() bool {
	return s.machine.HintVisible()
}

// Active reports whether the container pulse is on.
func (s *Session) Active() bool {
	return s.active
}

// RippleCount returns the number of ripples on screen.
func (s *Session) RippleCount() int {
	return len(s.ripples)
}

// ParticleCounts splits the live particles into ambient and burst.
func (s *Session) ParticleCounts() (ambient, burst int) {
	return s.field.Counts()
}

// ParticleColor returns the current particle fill color.
func (s *Session) ParticleColor() core.Color {
	return s.field.Color()
}

// Now returns the session clock.
func (s *Session) Now() time.Duration {
	return s.now
}

// Theme returns the parsed page colors.
func (s *Session) Theme() Theme {
	return s.theme
}

// Header returns the title the page asks its host to display.
func (s *Session) Header() string {
	return s.cfg.Page.Header
}

// CellSize returns the virtual pixel size of one cell.
func (s *Session) CellSize() (w, h int) {
	return s.cellW, s.cellH
}
