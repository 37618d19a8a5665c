package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Bird is the player avatar. X is fixed for the whole session; the
// bounding rectangle is always derived from X, Y, W and H.
type Bird struct {
	X, Y     float64
	W, H     float64
	Velocity float64 // Vertical, positive = down
	Rotation float64 // Degrees, cosmetic only
	Flap     int     // Frames of flap animation left
}

func newBird(cfg config.GameConfig) Bird {
	return Bird{
		X: cfg.BirdX(),
		Y: cfg.Screen.Height / 2,
		W: cfg.Bird.Width,
		H: cfg.Bird.Height,
	}
}

// Rect returns the collision rectangle.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Center returns the midpoint of the collision rectangle.
func (b Bird) Center() core.Vec {
	return b.Rect().Center()
}

// Flapping reports whether the flap animation is running.
func (b Bird) Flapping() bool {
	return b.Flap > 0
}

// jump applies the jump impulse and restarts the flap animation.
func (b *Bird) jump(cfg config.GameConfig) {
	b.Velocity = cfg.Physics.JumpStrength
	b.Flap = cfg.Bird.FlapFrames
}

// fall integrates one frame of gravity and updates the cosmetic rotation
// and animation counter.
func (b *Bird) fall(cfg config.GameConfig) {
	b.Velocity += cfg.Physics.Gravity
	b.Y += b.Velocity
	b.Rotation = core.ClampF(b.Velocity*cfg.Bird.RotationFactor, cfg.Bird.MinRotation, cfg.Bird.MaxRotation)
	if b.Flap > 0 {
		b.Flap--
	}
}
