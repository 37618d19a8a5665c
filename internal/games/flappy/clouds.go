package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// CloudCount is the fixed number of background clouds.
const CloudCount = 5

// Cloud is a non-interactive background decoration.
type Cloud struct {
	Pos   core.Vec
	Scale float64
	Speed float64 // World units per frame, leftward
}

// CloudRing is a fixed-capacity set of clouds that are recycled in place
// instead of being destroyed; its size never changes.
type CloudRing struct {
	clouds [CloudCount]Cloud
}

// NewCloudRing scatters clouds across the sky.
func NewCloudRing(cfg config.GameConfig, rng *rand.Rand) CloudRing {
	var r CloudRing
	for i := range r.clouds {
		r.clouds[i] = Cloud{
			Pos: core.Vec{
				X: uniform(rng, cfg.Clouds.SpawnMinX, cfg.Screen.Width),
				Y: uniform(rng, cfg.Clouds.MinY, cfg.Clouds.MaxY),
			},
			Scale: uniform(rng, cfg.Clouds.MinScale, cfg.Clouds.MaxScale),
			Speed: uniform(rng, cfg.Clouds.MinSpeed, cfg.Clouds.MaxSpeed),
		}
	}
	return r
}

// All returns a copy of the clouds.
func (r *CloudRing) All() [CloudCount]Cloud {
	return r.clouds
}

// Recycle moves cloud i back to x with a new vertical position, keeping
// its scale and speed.
func (r *CloudRing) Recycle(i int, x, y float64) {
	r.clouds[i].Pos = core.Vec{X: x, Y: y}
}

// Advance moves every cloud left by its own speed and recycles the ones
// that drifted past the left edge. Returns how many were recycled.
func (r *CloudRing) Advance(cfg config.GameConfig, rng *rand.Rand) int {
	recycled := 0
	for i := range r.clouds {
		r.clouds[i].Pos.X -= r.clouds[i].Speed
		if r.clouds[i].Pos.X < cfg.Clouds.DespawnX {
			r.Recycle(i,
				cfg.Screen.Width+cfg.Clouds.RespawnOffset,
				uniform(rng, cfg.Clouds.MinY, cfg.Clouds.MaxY),
			)
			recycled++
		}
	}
	return recycled
}

// uniform returns a uniformly distributed value in [lo, hi].
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
