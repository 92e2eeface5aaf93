package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sprite-run/internal/games/spriterun"
	"github.com/vovakirdan/sprite-run/internal/platform/tui"
	"github.com/vovakirdan/sprite-run/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Sprite Run in the terminal.

Controls:
  Space/Up/W   - Start / Jump
  Enter/R      - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.spriterun/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower speeds and wider gaps
  normal - Settings as loaded
  hard   - Faster speeds and more frequent obstacles
  fixed  - No speed-ups, the run stays at base speed

Examples:
  spriterun play
  spriterun play --difficulty easy
  spriterun play --config ./my-spriterun.yaml
  spriterun play --log-file /tmp/spriterun.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is used by the game)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "spriterun")
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, scores := openScores(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.ModelOptions{
		Settings: settings,
		Runtime:  runtimeConfig(width, height),
		History:  store,
		Scores:   scores,
		Logger:   logger,
	})
}

var _ spriterun.HighScoreStore = (*storage.HighScoreSlot)(nil)

// openScores opens the database. When it cannot be opened the game still
// runs with an in-memory high score and no history.
func openScores(logger *log.Logger) (*storage.Store, spriterun.HighScoreStore) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil, spriterun.NewMemoryHighScores()
	}
	return store, store.HighScoreSlot(storage.HighScoreKey)
}
