package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window with textures, mouse input and sound.

Missing textures are drawn as shapes and missing sounds stay silent.

Controls:
  Enter        - Start / continue / leave credits
  Space        - Flap
  Left click   - Flap and confirm
  C            - Credits (from the menu)
  Esc          - Leave credits

Examples:
  flappy window
  flappy window --assets ./resources --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("flappy", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return desktop.Run(desktop.Options{
		Game:    cfg,
		Runtime: runtimeConfig(0, 0),
		Logger:  logger,
	})
}
