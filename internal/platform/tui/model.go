package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/assets"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/raster"
)

// statusTicks is how long a status message replaces the help footer.
const statusTicks = 120

// Options configures a terminal game session.
type Options struct {
	Game    config.GameConfig
	Assets  *assets.Set // nil = primitives only, silent
	Runtime core.RuntimeConfig

	// ScreenshotDir receives Ctrl+S screenshots. Empty disables them.
	ScreenshotDir string

	Logger   *log.Logger        // nil = discard
	Renderer *lipgloss.Renderer // nil = local terminal
}

// Model is the Bubble Tea model running one game world.
type Model struct {
	world  *flappy.World
	canvas *Canvas
	screen *core.Screen
	render *Renderer
	keys   KeyMap
	help   help.Model
	footer lipgloss.Style

	runtime  core.RuntimeConfig
	input    core.InputFrame
	lastTick time.Time

	shotDir    string
	status     string
	statusLeft int

	logger   *log.Logger
	quitting bool
}

// NewModel creates a model with a fresh world in the Menu state.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	render := NewRenderer(opts.Renderer)

	cfg := opts.Game
	h := help.New()
	h.ShowAll = false

	return Model{
		world:   flappy.New(cfg, opts.Assets, rand.New(rand.NewSource(rt.Seed))),
		canvas:  NewCanvas(cfg.Screen.Width, cfg.Screen.Height, rt.ScreenW, rt.ScreenH-1),
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH-1),
		render:  render,
		keys:    DefaultKeyMap(),
		help:    h,
		footer:  render.lg.NewStyle().Foreground(lipgloss.Color("245")),
		runtime: rt,
		input:   core.NewInputFrame(),
		shotDir: opts.ScreenshotDir,
		logger:  logger,
	}
}

// World returns the world driven by the model.
func (m Model) World() *flappy.World {
	return m.world
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := MapMouse(msg); a != core.ActionNone {
			m.input.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleResize fits the canvas to the terminal, keeping one line for the footer.
// The world is in fixed units and is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the world by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.runtime.FrameSeconds())
	m.lastTick = now

	before := m.world.Mode()
	m.world.Step(m.input, dt)
	if after := m.world.Mode(); after != before {
		m.logger.Debug("mode changed", "from", before, "to", after, "score", m.world.Score())
	}
	m.input.Clear()

	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot renders the current frame at full world resolution and
// saves it as PNG.
func (m *Model) saveScreenshot() {
	path, err := m.screenshot()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.setStatus("screenshot failed: " + err.Error())
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

func (m *Model) screenshot() (string, error) {
	if m.shotDir == "" {
		return "", fmt.Errorf("tui: screenshots disabled")
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("flappy_%s.png", timestamp))

	cfg := m.world.Config()
	img := raster.Snapshot(m.world, cfg.Screen.Width, cfg.Screen.Height, 1)
	if err := raster.SavePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.world.Draw(m.canvas)
	m.canvas.Compose(m.screen)

	footer := m.status
	if footer == "" {
		footer = m.help.View(m.keys)
	}
	return m.render.RenderScreen(m.screen) + "\n" + m.footer.Render(footer)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks count as jump/confirm
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
