package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagLogFile  string
	flagNoRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a local game.

Controls:
  Left/A, Right/D  - Move
  Down/S           - Soft drop
  Space            - Hard drop
  Up/W             - Rotate
  P                - Pause
  R                - Restart
  ?                - Toggle help
  Q/Ctrl+C         - Quit

The game is recorded to the replay database unless --no-record is set.
Logs go to --log-file since the terminal is taken by the game.

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --config ./wide.yaml --no-record`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.blockfall/blockfall.log", "Log file path (empty disables logging)")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the game")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, fileErr := openLogFile(flagLogFile)
		if fileErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", fileErr)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger, err := newLogger(logOut, "blockfall")
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	var store *storage.Store
	if !flagNoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
			logger.Warn("recording disabled", "error", err)
			// Continue without recording
			store = nil
		} else {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	user := os.Getenv("USER")
	logger.Info("starting game", "user", user, "record", store != nil)

	return tui.Run(ctx, tui.SessionOptions{
		Config:  cfg,
		Runtime: runtime,
		Player:  user,
		Store:   store,
		Logger:  logger,
	})
}
