package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-glimmer/internal/config"
	"github.com/vovakirdan/tui-glimmer/internal/core"
	"github.com/vovakirdan/tui-glimmer/internal/host"
	"github.com/vovakirdan/tui-glimmer/internal/page"
	"github.com/vovakirdan/tui-glimmer/internal/reveal"
)

// footerRows is the number of rows reserved below the page for help,
// status and the command bar.
const footerRows = 1

// Options configure a page run.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Host    host.Host   // nil means no host
	Logger  *log.Logger // nil discards logs
}

// Model is the Bubble Tea model for the page.
type Model struct {
	session  *page.Session
	screen   *core.Screen
	renderer *Renderer
	host     host.Host
	config   core.RuntimeConfig
	logger   *log.Logger

	keys       KeyMap
	help       help.Model
	input      textinput.Model
	commanding bool   // Command bar has focus
	status     string // Result of the last command
	statusErr  bool
	quitting   bool
}

// NewModel creates the page model. It fails only on invalid configuration.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Host == nil {
		opts.Host = host.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	pageRT := cfg
	pageRT.ScreenH = core.Max(cfg.ScreenH-footerRows, 0)

	session, err := page.New(opts.Config, pageRT, opts.Logger)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Prompt = ":"
	input.Placeholder = `message "Title" "Subtitle" | color gold | add 20`
	input.CharLimit = 256

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:  session,
		screen:   core.NewScreen(pageRT.ScreenW, pageRT.ScreenH),
		renderer: NewRenderer(opts.Host.Background(session.Theme().Background)),
		host:     opts.Host,
		config:   cfg,
		logger:   opts.Logger,
		keys:     DefaultKeyMap(),
		help:     h,
		input:    input,
	}, nil
}

// Init asks the host for the full window and a themed header, then starts
// the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("page started",
		"host", m.host.Name(),
		"cols", m.config.ScreenW,
		"rows", m.config.ScreenH,
		"fps", m.config.TickRate,
	)
	return tea.Batch(
		m.host.Expand(),
		m.host.SetHeader(m.session.Header()),
		frameCmd(m.config.FrameInterval()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.commanding {
			return m.handleCommandKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		m.session.Frame(m.screen)
		return m, frameCmd(m.config.FrameInterval())
	}

	if m.commanding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input outside the command bar.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionReveal:
		m.session.Interact(reveal.KeyEvent())
	case core.ActionCommand:
		m.commanding = true
		m.input.Reset()
		return m, m.input.Focus()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleCommandKey processes keyboard input while the command bar is open.
func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.closeCommandBar()
		return m, nil
	case tea.KeyEnter:
		m.runCommand(m.input.Value())
		m.closeCommandBar()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeCommandBar() {
	m.commanding = false
	m.input.Blur()
	m.input.Reset()
}

// runCommand executes a command line and records its status.
func (m *Model) runCommand(line string) {
	c, err := ParseCommand(line)
	if err == nil {
		m.status, err = c.Execute(m.session)
	}
	if err != nil {
		m.logger.Warn("command failed", "line", line, "error", err)
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.statusErr = false
}

// handleMouse turns a left press on the page area into an interaction at
// the center of the pressed cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}

	cellW, cellH := m.session.CellSize()
	at := core.NewCanvas(m.screen, cellW, cellH, core.ColorDefault).CellCenter(msg.X, msg.Y)
	m.session.Interact(reveal.PointerEvent(at.X, at.Y))
	return m, nil
}

// handleResize resynchronizes the screen and the page with the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	rows := core.Max(msg.Height-footerRows, 0)
	m.screen.Resize(msg.Width, rows)
	m.session.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	m.input.Width = core.Max(msg.Width-2, 1)
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.screen) + "\n" + m.footer()
}

// footer renders the command bar, the last command status or the key help.
func (m Model) footer() string {
	theme := m.session.Theme()
	width := m.config.ScreenW

	switch {
	case m.commanding:
		return m.input.View()
	case m.status != "":
		fg := theme.Subtitle
		if m.statusErr {
			fg = theme.Accent
		}
		return m.renderer.Line(m.status, fg, width)
	default:
		return m.help.View(m.keys)
	}
}

// Session exposes the page session, for tests and scripting.
func (m Model) Session() *page.Session {
	return m.session
}

// Run starts the Bubble Tea program for the page.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithMouseCellMotion(), // Clicks reveal and cycle
	)

	_, err = p.Run()
	return err
}
