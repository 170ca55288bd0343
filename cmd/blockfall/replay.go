package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded game",
	Long: `Rebuild a recorded game from its seed and event stream and print
the final board and score.

Examples:
  blockfall replay 3f2a9c1e-6d0b-4c7e-9a51-2b8e0f4d7c13`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	return printReplay(store, args[0])
}

func printReplay(store *storage.Store, id string) error {
	r, err := store.Replay(id)
	if errors.Is(err, storage.ErrReplayNotFound) {
		return fmt.Errorf("no recorded game %q, run 'blockfall replays' to list them", id)
	}
	if err != nil {
		return err
	}

	settings := tetris.Settings{
		Width:          r.Width,
		Height:         r.Height,
		PointsPerLine:  r.PointsPerLine,
		DetectGameOver: r.DetectGameOver,
	}
	snap := tetris.Replay(settings, r.Seed, r.Actions).Snapshot()

	w, h := tetris.MinScreenSize(snap.Width, snap.Height)
	screen := core.NewScreen(w, h)
	tetris.Render(screen, snap)
	fmt.Println(screen.String())
	fmt.Println()

	fmt.Printf("Replay %s by %s (seed %d, %d events)\n", r.ID, playerName(r.Player), r.Seed, len(r.Actions))
	fmt.Printf("Score: %d  Lines: %d  Pieces: %d  State: %s\n", snap.Score, snap.Lines, snap.Pieces, snap.State)
	if snap.Score != r.Score || snap.Pieces != r.Pieces {
		fmt.Printf("Warning: recorded score %d / pieces %d differ from the re-simulation\n", r.Score, r.Pieces)
	}
	return nil
}

func playerName(p string) string {
	if p == "" {
		return "anonymous"
	}
	return p
}
