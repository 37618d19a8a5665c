package core

// RuntimeConfig contains settings passed from the platform to a game run.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (ignored by pixel backends)
	ScreenH  int   // Terminal height in characters (ignored by pixel backends)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// FrameSeconds returns the nominal duration of one frame.
func (c RuntimeConfig) FrameSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}
