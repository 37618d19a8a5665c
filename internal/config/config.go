// Package config provides YAML-based game configuration loading,
// validation and static difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration breaks a gameplay invariant.
var ErrInvalid = errors.New("invalid config")

// GameConfig contains every tuning constant of the game.
type GameConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Bird    BirdConfig    `yaml:"bird"`
	Physics PhysicsConfig `yaml:"physics"`
	Pipes   PipeConfig    `yaml:"pipes"`
	Clouds  CloudConfig   `yaml:"clouds"`
	Ground  GroundConfig  `yaml:"ground"`
	Timing  TimingConfig  `yaml:"timing"`
	Assets  AssetConfig   `yaml:"assets"`
}

// ScreenConfig defines the logical playfield size in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
}

// BirdConfig defines the avatar hitbox and its cosmetic animation.
type BirdConfig struct {
	XFraction      float64 `yaml:"x_fraction"` // Fixed x as a fraction of screen width
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	FlapFrames     int     `yaml:"flap_frames"`
	RotationFactor float64 `yaml:"rotation_factor"` // Degrees per unit of velocity
	MinRotation    float64 `yaml:"min_rotation"`
	MaxRotation    float64 `yaml:"max_rotation"`
}

// PhysicsConfig defines per-frame avatar physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"` // Negative = up
}

// PipeConfig defines obstacle geometry, motion and spawning.
type PipeConfig struct {
	Width         float64 `yaml:"width"`
	GapSize       float64 `yaml:"gap_size"`
	Speed         float64 `yaml:"speed"`          // World units per frame
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	GapMargin     float64 `yaml:"gap_margin"`     // Min distance of the gap center from either screen edge
	DespawnX      float64 `yaml:"despawn_x"`      // Pipes whose right edge is left of this are removed
}

// CloudConfig defines the background decoration ranges.
type CloudConfig struct {
	MinY          float64 `yaml:"min_y"`
	MaxY          float64 `yaml:"max_y"`
	MinScale      float64 `yaml:"min_scale"`
	MaxScale      float64 `yaml:"max_scale"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpawnMinX     float64 `yaml:"spawn_min_x"`
	DespawnX      float64 `yaml:"despawn_x"`
	RespawnOffset float64 `yaml:"respawn_offset"` // Distance right of the screen edge on recycle
}

// GroundConfig defines the scrolling ground strip.
type GroundConfig struct {
	Height    float64 `yaml:"height"`
	TileWidth float64 `yaml:"tile_width"`
}

// TimingConfig defines UI timers.
type TimingConfig struct {
	GameOverDelay float64 `yaml:"game_over_delay"` // Seconds before GameOver accepts confirm
}

// AssetConfig lists optional asset files. Relative paths resolve against Dir.
type AssetConfig struct {
	Dir        string `yaml:"dir"`
	Background string `yaml:"background"`
	Bird       string `yaml:"bird"`
	Pipe       string `yaml:"pipe"`
	JumpSound  string `yaml:"jump_sound"`
	ScoreSound string `yaml:"score_sound"`
	CrashSound string `yaml:"crash_sound"`
}

// BirdX returns the fixed horizontal position of the avatar.
func (c GameConfig) BirdX() float64 {
	return c.Screen.Width * c.Bird.XFraction
}

// GroundY returns the y-coordinate of the top of the ground strip.
func (c GameConfig) GroundY() float64 {
	return c.Screen.Height - c.Ground.Height
}

// GapCenterRange returns the inclusive range the gap center is drawn from.
func (c GameConfig) GapCenterRange() (min, max float64) {
	return c.Pipes.GapMargin, c.Screen.Height - c.Pipes.GapMargin - c.Pipes.GapSize/2
}

// Validate checks that the configuration keeps the game playable and the
// obstacle invariants intact.
func (c GameConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size must be positive", ErrInvalid)
	case c.Bird.Width <= 0 || c.Bird.Height <= 0:
		return fmt.Errorf("%w: bird size must be positive", ErrInvalid)
	case c.Bird.XFraction <= 0 || c.Bird.XFraction >= 1:
		return fmt.Errorf("%w: bird x_fraction must be in (0, 1)", ErrInvalid)
	case c.Bird.MinRotation > c.Bird.MaxRotation:
		return fmt.Errorf("%w: bird min_rotation exceeds max_rotation", ErrInvalid)
	case c.Pipes.Width <= 0 || c.Pipes.GapSize <= 0:
		return fmt.Errorf("%w: pipe width and gap_size must be positive", ErrInvalid)
	case c.Pipes.GapSize <= c.Bird.Height:
		return fmt.Errorf("%w: gap_size %.0f must exceed bird height %.0f", ErrInvalid, c.Pipes.GapSize, c.Bird.Height)
	case c.Pipes.Speed <= 0:
		return fmt.Errorf("%w: pipe speed must be positive", ErrInvalid)
	case c.Pipes.SpawnInterval <= 0:
		return fmt.Errorf("%w: pipe spawn_interval must be positive", ErrInvalid)
	case c.Pipes.GapMargin <= c.Pipes.GapSize/2:
		return fmt.Errorf("%w: gap_margin %.0f leaves no room for the top pipe", ErrInvalid, c.Pipes.GapMargin)
	case c.Ground.Height < 0 || c.Ground.Height >= c.Screen.Height:
		return fmt.Errorf("%w: ground height must be in [0, screen height)", ErrInvalid)
	case c.Ground.TileWidth <= 0:
		return fmt.Errorf("%w: ground tile_width must be positive", ErrInvalid)
	case c.Timing.GameOverDelay < 0:
		return fmt.Errorf("%w: game_over_delay must not be negative", ErrInvalid)
	case c.Clouds.MinY > c.Clouds.MaxY || c.Clouds.MinScale > c.Clouds.MaxScale || c.Clouds.MinSpeed > c.Clouds.MaxSpeed:
		return fmt.Errorf("%w: cloud ranges must have min <= max", ErrInvalid)
	}

	lo, hi := c.GapCenterRange()
	if lo > hi {
		return fmt.Errorf("%w: gap of %.0f does not fit the screen with margin %.0f", ErrInvalid, c.Pipes.GapSize, c.Pipes.GapMargin)
	}
	if hi+c.Pipes.GapSize/2 >= c.Screen.Height {
		return fmt.Errorf("%w: bottom pipe would be empty", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
// Presets are applied once before a run; values stay constant for the session.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts gap size and pipe speed for a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyNormal:
	case DifficultyEasy:
		cfg.Pipes.GapSize *= 1.2
		cfg.Pipes.Speed *= 0.8
	case DifficultyHard:
		cfg.Pipes.GapSize *= 0.85
		cfg.Pipes.Speed *= 1.25
	default:
		return fmt.Errorf("unknown difficulty preset %q (want easy, normal or hard)", preset)
	}
	return nil
}
