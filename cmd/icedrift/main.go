// icedrift is a crash-style wagering game played in the terminal: sail past
// drifting ice, collect the multiplier, and cash out before the iceberg.
//
// Usage:
//
//	icedrift play            - Play with a persistent wallet
//	icedrift play --practice - Play with a throwaway wallet
//	icedrift list            - List available game variants
//	icedrift history         - Show recent rounds and aggregate stats
//	icedrift odds            - Run a headless Monte Carlo RTP simulation
//	icedrift serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.icedrift/icedrift.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/nordvik/icedrift/internal/games/icedrift"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "icedrift",
	Short: "Icedrift - A crash-style ice sailing game for your terminal",
	Long: `Icedrift is a terminal wagering game. Place a bet, sail past ice floes
to grow your multiplier, and cash out before the ship hits an iceberg.

Available commands:
  play     - Play a round session
  list     - Show available game variants
  history  - View recent rounds and lifetime stats
  odds     - Simulate many rounds headlessly and report the realized RTP
  serve    - Start SSH server for remote play

Examples:
  icedrift play
  icedrift play --practice
  icedrift history
  icedrift odds --rounds 100000 --cash-after 3
  icedrift serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.icedrift/icedrift.db", "Path to wallet and history database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(oddsCmd)
	rootCmd.AddCommand(serveCmd)
}
