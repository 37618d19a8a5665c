// Package flappy implements a Flappy Bird-style game.
// The player keeps a bird airborne through gaps in scrolling pipe pairs,
// scoring one point per pipe passed.
//
// A World is a pure simulation: it is advanced one frame at a time with
// Update and rendered into any core.Canvas with Draw, so the same game runs
// in a terminal, a desktop window or a headless raster image.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/assets"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// World holds the complete mutable game state. It is not safe for
// concurrent use; one goroutine drives it.
type World struct {
	cfg    config.GameConfig
	assets *assets.Set
	rng    *rand.Rand

	phase phase

	bird   Bird
	pipes  PipeList
	clouds CloudRing

	score     int // Pipes passed this session
	highScore int // Best score since process start

	spawnTimer   float64 // Seconds since the last pipe spawn
	groundOffset float64 // Horizontal scroll of the ground treads, in (-screenW, 0]
}

// New creates a world in the Menu state. A nil asset set draws with
// primitives only and plays no sound; a nil rng uses seed 1.
func New(cfg config.GameConfig, set *assets.Set, rng *rand.Rand) *World {
	if set == nil {
		set = assets.Empty()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &World{
		cfg:    cfg,
		assets: set,
		rng:    rng,
		phase:  menuPhase{},
		bird:   newBird(cfg),
		clouds: NewCloudRing(cfg, rng),
	}
}

// Update advances the world by one frame. dt is the real time elapsed since
// the previous frame in seconds and only drives the spawn and game-over
// timers; movement is per frame.
func (w *World) Update(in Input, dt float64) {
	w.phase = w.phase.update(w, in, dt)
}

// Step is Update with raw backend actions.
func (w *World) Step(frame core.InputFrame, dt float64) {
	w.Update(InputFromFrame(frame), dt)
}

// Config returns the configuration the world was created with.
func (w *World) Config() config.GameConfig { return w.cfg }

// Mode returns the current UI state.
func (w *World) Mode() Mode { return w.phase.mode() }

// Score returns the score of the current or last session.
func (w *World) Score() int { return w.score }

// HighScore returns the best score since the process started.
func (w *World) HighScore() int { return w.highScore }

// Bird returns a copy of the avatar.
func (w *World) Bird() Bird { return w.bird }

// Pipes returns a copy of the active pipes, left to right.
func (w *World) Pipes() []Pipe { return w.pipes.All() }

// Clouds returns a copy of the background clouds.
func (w *World) Clouds() [CloudCount]Cloud { return w.clouds.All() }

// GroundOffset returns the current ground scroll offset.
func (w *World) GroundOffset() float64 { return w.groundOffset }

// SpawnTimer returns the seconds accumulated toward the next pipe spawn.
func (w *World) SpawnTimer() float64 { return w.spawnTimer }

// GameOverElapsed returns the seconds spent on the game-over screen, or 0
// in any other state.
func (w *World) GameOverElapsed() float64 {
	if p, ok := w.phase.(gameOverPhase); ok {
		return p.elapsed
	}
	return 0
}

// CanContinue reports whether the game-over screen accepts confirm input.
func (w *World) CanContinue() bool {
	p, ok := w.phase.(gameOverPhase)
	return ok && p.elapsed >= w.cfg.Timing.GameOverDelay
}

// startSession resets the per-session state when leaving the menu.
// Rotation and the flap counter are cosmetic and carry over.
func (w *World) startSession() {
	w.bird.Y = w.cfg.Screen.Height / 2
	w.bird.Velocity = 0
	w.pipes.Clear()
	w.score = 0
	w.spawnTimer = 0
}

// simulate runs one Playing frame and reports whether the bird crashed.
// Clouds and ground keep moving on the crash frame.
func (w *World) simulate(in Input, dt float64) bool {
	if in.Jump {
		w.bird.jump(w.cfg)
		w.assets.Jump.Play()
	}
	w.bird.fall(w.cfg)

	w.spawnTimer += dt
	if w.spawnTimer >= w.cfg.Pipes.SpawnInterval {
		w.spawnTimer = 0
		w.spawnPipe()
	}

	w.pipes.Advance(-w.cfg.Pipes.Speed)
	for n := w.pipes.ScorePassed(w.bird.X); n > 0; n-- {
		w.score++
		w.assets.Score.Play()
	}
	w.pipes.RemoveOffscreen(w.cfg.Pipes.DespawnX)

	crashed := w.collide()

	w.clouds.Advance(w.cfg, w.rng)
	w.scrollGround()

	return crashed
}

func (w *World) spawnPipe() {
	lo, hi := w.cfg.GapCenterRange()
	center := uniform(w.rng, lo, hi)
	w.pipes.Push(NewPipe(w.cfg.Screen.Width, w.cfg.Pipes.Width, center, w.cfg.Pipes.GapSize, w.cfg.Screen.Height))
}

// collide checks ground, ceiling and pipes in that order. Ground and
// ceiling hits clamp the bird back inside the playfield.
func (w *World) collide() bool {
	groundY := w.cfg.GroundY()
	if w.bird.Y+w.bird.H > groundY {
		w.bird.Y = groundY - w.bird.H
		return true
	}
	if w.bird.Y < 0 {
		w.bird.Y = 0
		return true
	}
	return w.pipes.FirstHit(w.bird.Rect()) >= 0
}

func (w *World) scrollGround() {
	w.groundOffset -= w.cfg.Pipes.Speed
	if w.groundOffset <= -w.cfg.Screen.Width {
		w.groundOffset = 0
	}
}

// crash ends the session.
func (w *World) crash() {
	w.assets.Crash.Play()
	if w.score > w.highScore {
		w.highScore = w.score
	}
}
