package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching defaults/flappy.yaml.
func Default() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Title:  "Flappy",
		},
		Bird: BirdConfig{
			XFraction:      0.25,
			Width:          40,
			Height:         30,
			FlapFrames:     10,
			RotationFactor: 2,
			MinRotation:    -30,
			MaxRotation:    60,
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpStrength: -10,
		},
		Pipes: PipeConfig{
			Width:         80,
			GapSize:       200,
			Speed:         3,
			SpawnInterval: 2,
			GapMargin:     150,
			DespawnX:      -50,
		},
		Clouds: CloudConfig{
			MinY:          50,
			MaxY:          200,
			MinScale:      0.5,
			MaxScale:      1.5,
			MinSpeed:      1,
			MaxSpeed:      3,
			SpawnMinX:     -100,
			DespawnX:      -100,
			RespawnOffset: 50,
		},
		Ground: GroundConfig{
			Height:    50,
			TileWidth: 50,
		},
		Timing: TimingConfig{
			GameOverDelay: 1,
		},
		Assets: AssetConfig{
			Dir:        "resources",
			Background: "background.png",
			Bird:       "bird.png",
			Pipe:       "pipe.png",
			JumpSound:  "jump.wav",
			ScoreSound: "score.wav",
			CrashSound: "crash.wav",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
