// Package desktop runs the game in a native window with Ebitengine:
// textures, mouse input and sound.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/assets"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Options configures a window session.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger // nil = discard
}

// inputSource reports press edges for the current frame.
type inputSource interface {
	KeyPressed(k ebiten.Key) bool
	MousePressed(b ebiten.MouseButton) bool
}

// ebitenInput reads input through inpututil.
type ebitenInput struct{}

func (ebitenInput) KeyPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenInput) MousePressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

// keyBindings maps window keys to actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyNumpadEnter, core.ActionConfirm},
	{ebiten.KeyC, core.ActionCredits},
	{ebiten.KeyEscape, core.ActionCancel},
}

// readInput collects the actions pressed this frame.
func readInput(src inputSource) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range keyBindings {
		if src.KeyPressed(b.key) {
			frame.Set(b.action)
		}
	}
	if src.MousePressed(ebiten.MouseButtonLeft) {
		frame.Set(core.ActionClick)
	}
	return frame
}

// Game adapts a World to ebiten.Game.
type Game struct {
	world  *flappy.World
	canvas *Canvas
	input  inputSource
	dt     float64
	logger *log.Logger
}

// NewGame wraps a world. The canvas draws at world resolution; ebiten
// scales it to the window.
func NewGame(world *flappy.World, canvas *Canvas, tickRate int) *Game {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Game{
		world:  world,
		canvas: canvas,
		input:  ebitenInput{},
		dt:     1 / float64(tickRate),
		logger: log.New(io.Discard),
	}
}

// Update advances the world by one tick.
func (g *Game) Update() error {
	before := g.world.Mode()
	g.world.Step(readInput(g.input), g.dt)
	if after := g.world.Mode(); after != before {
		g.logger.Debug("mode changed", "from", before, "to", after, "score", g.world.Score())
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.world.Draw(g.canvas)
}

// Layout keeps the logical screen at world size.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.canvas.Size()
	return int(w), int(h)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) (err error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Game
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	face, err := NewFaceSource()
	if err != nil {
		return err
	}

	loader := NewLoader(audio.NewContext(SampleRate))
	set := assets.Load(loader, cfg.Assets, logger)
	defer func() {
		if cerr := set.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("desktop: release assets: %w", cerr))
		}
	}()

	world := flappy.New(cfg, set, rand.New(rand.NewSource(rt.Seed)))
	game := NewGame(world, NewCanvas(cfg.Screen.Width, cfg.Screen.Height, face), rt.TickRate)
	game.logger = logger

	ebiten.SetWindowSize(int(cfg.Screen.Width), int(cfg.Screen.Height))
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetTPS(rt.TickRate)

	logger.Info("window opened", "width", cfg.Screen.Width, "height", cfg.Screen.Height, "tps", rt.TickRate)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	logger.Info("window closed", "high_score", world.HighScore())
	return nil
}
