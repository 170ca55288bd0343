package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded games",
	Long: `Display the most recent recorded games.

With --browse, opens an interactive list; pick a game with Enter to
re-simulate it, or delete it with X.

Examples:
  blockfall replays
  blockfall replays --limit 50
  blockfall replays --browse`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to list")
	replaysCmd.Flags().BoolVarP(&flagBrowse, "browse", "b", false, "Browse replays interactively")
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	if flagBrowse {
		return browseReplays(store)
	}

	replays, err := store.RecentReplays(flagLimit)
	if err != nil {
		return fmt.Errorf("listing replays: %w", err)
	}

	fmt.Println("Recorded games")
	fmt.Println()

	if len(replays) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to record one!")
		return nil
	}

	fmt.Printf("  %-36s  %-12s  %-6s  %-5s  %-7s  %s\n", "ID", "Player", "Score", "Lines", "Events", "Date")
	fmt.Printf("  %-36s  %-12s  %-6s  %-5s  %-7s  %s\n", "--", "------", "-----", "-----", "------", "----")
	for _, r := range replays {
		fmt.Printf("  %-36s  %-12s  %-6d  %-5d  %-7d  %s\n",
			r.ID, r.Player, r.Score, r.Lines, r.ActionCount, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func browseReplays(store *storage.Store) error {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	id, err := tui.RunReplayBrowser(store, width, height)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	return printReplay(store, id)
}
