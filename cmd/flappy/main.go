// flappy is a side-scrolling arcade game: keep the bird in the air and
// fly through the gaps between the pipes.
//
// Usage:
//
//	flappy                   - Play in the terminal (same as "flappy play")
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window with textures and sound
//	flappy serve             - Start SSH server for remote play
//	flappy snapshot          - Render a scripted frame to a PNG file
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Game config YAML (default: search ~/.flappy, ./configs)
//	--preset <name>   - Difficulty preset: easy, normal, hard
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--assets <dir>    - Override the asset directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagFPS      int
	flagSeed     int64
	flagAssets   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the pipes",
	Long: `Flappy is a single-screen arcade game. Press Enter to start, Space to
flap, and fly through the gaps between the pipes. Every pipe passed is a
point; touching a pipe, the ground or the ceiling ends the round.

Available commands:
  play      - Play in the terminal (default)
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  snapshot  - Render a scripted frame to PNG
  config    - Print the effective configuration

Examples:
  flappy
  flappy window --preset easy
  flappy serve --ssh :2222
  flappy snapshot --state playing --frames 90 -o frame.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the config file, preset and asset override.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagPreset)); err != nil {
		return config.GameConfig{}, err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig builds the runtime settings shared by every mode.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
