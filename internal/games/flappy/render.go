package flappy

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Visual constants in world units
const (
	pipeCapHeight = 10
	pipeCapInset  = 5 // Horizontal overhang of a cap on each side
	treadHeight   = 5
	eyeRadius     = 4
	pupilRadius   = 2
	cloudAlpha    = 0.8
)

var (
	eyeOffset = core.Vec{X: 8, Y: -5}

	// Cloud puffs: offset from the cloud position and base radius, both scaled
	cloudPuffs = [...]struct {
		offset core.Vec
		radius float64
	}{
		{core.Vec{X: 0, Y: 0}, 30},
		{core.Vec{X: 25, Y: -10}, 25},
		{core.Vec{X: -20, Y: 10}, 20},
	}
)

// CreditLines are shown on the credits screen below the heading.
var CreditLines = []string{
	"Game created in Go",
	"Terminal: Bubble Tea  Window: Ebitengine",
	"Art: built-in shapes or your own PNGs",
	"Sound Effects: drop WAVs in resources/",
}

// Draw renders a full frame. It only reads world state.
func (w *World) Draw(c core.Canvas) {
	w.drawBackground(c)
	w.drawClouds(c)
	w.drawPipes(c)
	w.drawGround(c)
	w.drawBird(c)
	w.phase.overlay(w, c)
}

func (w *World) screenRect() core.Rect {
	return core.NewRect(0, 0, w.cfg.Screen.Width, w.cfg.Screen.Height)
}

func (w *World) drawBackground(c core.Canvas) {
	c.Clear(core.ColorSkyBlue)
	if bg := w.assets.Background; bg.Valid() {
		c.DrawTexture(bg, core.TextureOptions{Dst: w.screenRect(), Tint: core.ColorWhite})
		return
	}
	c.FillRectGradientV(w.screenRect(), core.ColorSkyBlue, core.ColorBlue)
}

func (w *World) drawClouds(c core.Canvas) {
	fill := core.ColorWhite.Fade(cloudAlpha)
	for _, cl := range w.clouds.clouds {
		for _, puff := range cloudPuffs {
			center := core.Vec{X: cl.Pos.X + puff.offset.X*cl.Scale, Y: cl.Pos.Y + puff.offset.Y*cl.Scale}
			c.FillCircle(center, puff.radius*cl.Scale, fill)
		}
	}
}

func (w *World) drawPipes(c core.Canvas) {
	tex := w.assets.Pipe
	for _, p := range w.pipes.pipes {
		if tex.Valid() {
			c.DrawTexture(tex, core.TextureOptions{Dst: p.Top, FlipY: true, Tint: core.ColorWhite})
			c.DrawTexture(tex, core.TextureOptions{Dst: p.Bottom, Tint: core.ColorWhite})
			continue
		}

		c.FillRect(p.Top, core.ColorGreen)
		c.FillRect(p.Bottom, core.ColorGreen)
		capW := p.Top.W + 2*pipeCapInset
		c.FillRect(core.NewRect(p.X()-pipeCapInset, p.Top.Bottom()-pipeCapHeight, capW, pipeCapHeight), core.ColorDarkGreen)
		c.FillRect(core.NewRect(p.X()-pipeCapInset, p.Bottom.Y, capW, pipeCapHeight), core.ColorDarkGreen)
	}
}

func (w *World) drawGround(c core.Canvas) {
	y := w.cfg.GroundY()
	c.FillRect(core.NewRect(0, y, w.cfg.Screen.Width, w.cfg.Ground.Height), core.ColorBrown)

	// Two staggered rows of treads; one extra screen of tiles covers the scroll
	tile := w.cfg.Ground.TileWidth
	tiles := int(w.cfg.Screen.Width/tile) + 2
	for i := 0; i < tiles; i++ {
		tread := core.NewRect(float64(i)*tile+w.groundOffset, y, tile/2, treadHeight)
		c.FillRect(tread, core.ColorDarkBrown)
		c.FillRect(tread.Translate(tile/2, treadHeight), core.ColorDarkBrown)
	}
}

func (w *World) drawBird(c core.Canvas) {
	b := w.bird
	if tex := w.assets.Bird; tex.Valid() {
		c.DrawTexture(tex, core.TextureOptions{
			Dst:      b.Rect(),
			Origin:   core.Vec{X: b.W / 2, Y: b.H / 2},
			Rotation: b.Rotation,
			Tint:     core.ColorWhite,
		})
		return
	}

	body := core.ColorYellow
	if b.Flapping() {
		body = core.ColorOrange
	}
	center := b.Center()
	eye := core.Vec{X: center.X + eyeOffset.X, Y: center.Y + eyeOffset.Y}
	c.FillCircle(center, b.W/2, body)
	c.FillCircle(eye, eyeRadius, core.ColorBlack)
	c.FillCircle(eye, pupilRadius, core.ColorWhite)
}

// drawCentered draws s horizontally centered with its top at y.
func drawCentered(c core.Canvas, s string, y, size float64, col core.Color) {
	width, _ := c.Size()
	c.DrawText(s, core.Vec{X: (width - c.MeasureText(s, size)) / 2, Y: y}, size, col)
}

func (w *World) tint(c core.Canvas, alpha float64) {
	c.FillRect(w.screenRect(), core.ColorBlack.Fade(alpha))
}

func (menuPhase) overlay(w *World, c core.Canvas) {
	drawCentered(c, strings.ToUpper(w.cfg.Screen.Title), 100, 50, core.ColorYellow)
	drawCentered(c, "Press ENTER or CLICK to Start", 250, 30, core.ColorWhite)
	drawCentered(c, "Press C for Credits", 300, 20, core.ColorLightGray)
	drawCentered(c, fmt.Sprintf("High Score: %d", w.highScore), 350, 30, core.ColorGold)
}

func (playingPhase) overlay(w *World, c core.Canvas) {
	c.DrawText(fmt.Sprintf("Score: %d", w.score), core.Vec{X: 20, Y: 20}, 30, core.ColorWhite)
	c.DrawText(fmt.Sprintf("High Score: %d", w.highScore), core.Vec{X: 20, Y: 60}, 20, core.ColorLightGray)
}

func (p gameOverPhase) overlay(w *World, c core.Canvas) {
	w.tint(c, 0.5)
	drawCentered(c, "GAME OVER", 150, 50, core.ColorRed)
	drawCentered(c, fmt.Sprintf("Score: %d", w.score), 250, 30, core.ColorGold)
	drawCentered(c, fmt.Sprintf("High Score: %d", w.highScore), 290, 20, core.ColorLightGray)
	if p.elapsed >= w.cfg.Timing.GameOverDelay {
		drawCentered(c, "Press ENTER or CLICK to Continue", 350, 25, core.ColorLightGray)
	}
}

func (creditsPhase) overlay(w *World, c core.Canvas) {
	w.tint(c, 0.8)
	drawCentered(c, "CREDITS", 100, 50, core.ColorYellow)
	for i, line := range CreditLines {
		size, col := 25.0, core.ColorLightGray
		if i == 0 {
			size, col = 30, core.ColorWhite
		}
		y := 180.0
		if i > 0 {
			y = 230 + float64(i-1)*30
		}
		drawCentered(c, line, y, size, col)
	}
	drawCentered(c, "Press ENTER or ESC to Return", 400, 20, core.ColorGray)
}
