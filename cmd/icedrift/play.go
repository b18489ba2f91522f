package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nordvik/icedrift/internal/engine"
	"github.com/nordvik/icedrift/internal/games/icedrift"
	"github.com/nordvik/icedrift/internal/platform/tui"
	"github.com/nordvik/icedrift/internal/registry"
	"github.com/nordvik/icedrift/internal/storage"
)

var (
	flagConfig   string
	flagPractice bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play icedrift",
	Long: `Start a play session. Your wallet balance and round history persist
between sessions unless --practice is set.

Controls:
  Up/Down    - Adjust bet amount
  Enter      - Place bet (during the betting window)
  C          - Cancel pending bet
  Space      - Cash out mid-round
  S          - Skip the countdown and sail now
  Q/Ctrl+C   - Quit

Examples:
  icedrift play
  icedrift play --practice
  icedrift play --seed 42
  icedrift play --config ./my-odds.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Use a throwaway wallet, persist nothing")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "icedrift"
	if flagPractice {
		gameID = "icedrift_demo"
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := engine.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation
	icedrift.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open the wallet; practice mode plays entirely in memory
	var store *storage.Store
	if !flagPractice {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
			store = nil
		}
	}

	// Resume the persisted balance if one exists
	if store != nil {
		if balance, ok, balErr := store.Balance(gameID); balErr == nil && ok {
			cfg.StartingBalance = balance
		}
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
