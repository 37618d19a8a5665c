package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/assets"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
)

var flagShotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

The 800x600 playfield is scaled to the terminal; every character cell
shows two pixels. Image assets are sampled into the cells; the terminal
has no audio, so every sound stays silent.

Controls:
  Enter         - Start / continue / leave credits
  Space/Up/W    - Flap
  Left click    - Flap and confirm
  C             - Credits (from the menu)
  Esc           - Leave credits
  Ctrl+S        - Save a PNG screenshot
  Q/Ctrl+C      - Quit

Examples:
  flappy play
  flappy play --preset hard
  flappy play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagShotDir, "screenshots", "", "Screenshot directory (default: ~/.flappy/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// stderr would tear the alt screen, so terminal logs are discarded
	// unless --log-file is set.
	logger, closeLog, err := newLogger("flappy", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early for the canvas
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	set := assets.Load(assets.ImageLoader{}, cfg.Assets, logger)
	defer set.Close()

	return tui.Run(tui.Options{
		Game:          cfg,
		Assets:        set,
		Runtime:       runtimeConfig(width, height),
		ScreenshotDir: screenshotDir(),
		Logger:        logger,
	})
}

// screenshotDir returns the flag value or ~/.flappy/screenshots.
func screenshotDir() string {
	if flagShotDir != "" {
		return flagShotDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "screenshots")
}
