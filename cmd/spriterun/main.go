// spriterun is an endless runner for the terminal, SSH and the browser.
//
// Usage:
//
//	spriterun play      - Play in the terminal
//	spriterun serve     - Serve the game over SSH and WebSocket
//	spriterun scores    - Show run history and the high score
//	spriterun config    - Print the effective settings
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.spriterun/scores.db)
//	--config <path>       - Load settings from a YAML file
//	--difficulty <name>   - Apply a preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spriterun",
	Short: "Sprite Run - jump over obstacles that keep getting faster",
	Long: `Sprite Run is an endless runner. Press space to start and to jump,
avoid the obstacles, and beat your high score. The game speeds up as
your score grows.

Examples:
  spriterun play
  spriterun play --difficulty hard
  spriterun serve --ssh :2222 --http :8080
  spriterun scores --interactive`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.spriterun/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom settings YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads the settings file and applies the difficulty preset.
func loadSettings() (config.Settings, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Settings{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.Settings{}, err
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// runtimeConfig builds the runtime config for a screen of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
