package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/lightmixer/internal/light"
	"github.com/muurk/lightmixer/internal/logging"
)

// DefaultTickRate is the redraw interval when none is configured
const DefaultTickRate = 250 * time.Millisecond

// tickMsg signals a periodic redraw.
type tickMsg time.Time

// Options configures a dashboard Model
type Options struct {
	TickRate time.Duration     // Redraw interval; DefaultTickRate when zero
	Refresh  bool              // Re-read every controller's brightness on each tick
	Keys     *KeyMap           // Key bindings; DefaultKeyMap when nil
	Aliases  map[string]string // Device path -> alias shown in gauge labels
}

// Model is the full-screen dashboard: one gauge per controller and a cursor
// selecting the controller the adjust keys act on.
type Model struct {
	Controllers []*light.Controller
	Cursor      int

	TickRate time.Duration
	Refresh  bool
	Aliases  map[string]string

	// UI state
	Width  int
	Height int

	Keys KeyMap
	Help help.Model
}

// New creates a dashboard over controllers with the cursor on the first one
func New(controllers []*light.Controller, opts Options) Model {
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}

	return Model{
		Controllers: controllers,
		Cursor:      0,
		TickRate:    tickRate,
		Refresh:     opts.Refresh,
		Aliases:     opts.Aliases,
		Keys:        keys,
		Help:        help.New(),
	}
}

// Init starts the redraw ticker
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.TickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses, resizes and ticks
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.Refresh {
			m.reload()
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Down):
		m.down()
	case key.Matches(msg, m.Keys.Up):
		m.up()
	case key.Matches(msg, m.Keys.Decrease):
		m.decrease()
	case key.Matches(msg, m.Keys.Increase):
		m.increase()
	}
	return m, nil
}

func (m *Model) down() {
	if len(m.Controllers) == 0 {
		return
	}
	m.Cursor = (m.Cursor + 1) % len(m.Controllers)
}

func (m *Model) up() {
	if len(m.Controllers) == 0 {
		return
	}
	if m.Cursor == 0 {
		m.Cursor = len(m.Controllers) - 1
	} else {
		m.Cursor--
	}
}

// decrease lowers the selected controller by one step. A failed write is
// dropped silently: SetBrightness leaves the value unchanged and the next
// redraw shows the device as it was.
func (m *Model) decrease() {
	c := m.selected()
	if c == nil || c.Brightness == 0 {
		return
	}
	_ = c.SetBrightness(c.Brightness - 1)
}

// increase raises the selected controller by one step, same failure policy
// as decrease.
func (m *Model) increase() {
	c := m.selected()
	if c == nil || c.Brightness >= c.MaxBrightness {
		return
	}
	_ = c.SetBrightness(c.Brightness + 1)
}

func (m *Model) selected() *light.Controller {
	if m.Cursor < 0 || m.Cursor >= len(m.Controllers) {
		return nil
	}
	return m.Controllers[m.Cursor]
}

func (m *Model) reload() {
	for _, c := range m.Controllers {
		if err := c.Reload(); err != nil {
			logging.Debug("Controller reload failed", zap.String("path", c.Path), zap.Error(err))
		}
	}
}
