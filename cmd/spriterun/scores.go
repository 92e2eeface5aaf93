package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sprite-run/internal/games/spriterun"
	"github.com/vovakirdan/sprite-run/internal/platform/tui"
	"github.com/vovakirdan/sprite-run/internal/storage"
)

var (
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and the high score",
	Long: `Display the best runs and the persisted high score.

Examples:
  spriterun scores
  spriterun scores --limit 25
  spriterun scores --interactive
  spriterun scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and the high score")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	slot := store.HighScoreSlot(storage.HighScoreKey)

	if flagClear {
		if err := store.ClearScores(spriterun.ID); err != nil {
			return err
		}
		if err := slot.Reset(); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(spriterun.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Sprite Run")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'spriterun play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10s  %s\n", i+1, spriterun.FormatScore(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if best, err := store.HighScore(spriterun.ID); err == nil {
			fmt.Println()
			fmt.Printf("Best run: %d\n", best)
		}
	}

	if high, ok, err := slot.LoadHighScore(); err == nil && ok {
		fmt.Printf("High score: %s\n", spriterun.FormatScore(high))
	}
	return nil
}
