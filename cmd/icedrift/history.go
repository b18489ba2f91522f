package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nordvik/icedrift/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rounds and lifetime stats",
	Long: `Display the most recent rounds and aggregate statistics for the
persistent wallet: rounds played, crashes, lifeboats, cash-outs, and the
realized return-to-player ratio.

Examples:
  icedrift history
  icedrift history --limit 50`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of recent rounds to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	const gameID = "icedrift"

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.RecentRounds(gameID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Round History - Icedrift")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'icedrift play' to record the first round!")
		return
	}

	fmt.Printf("  %-8s  %-9s  %-6s  %-9s  %-5s  %-4s  %s\n",
		"Outcome", "Stake", "Mult", "Payout", "Hits", "Out", "Date")
	fmt.Printf("  %-8s  %-9s  %-6s  %-9s  %-5s  %-4s  %s\n",
		"-------", "-----", "----", "------", "----", "---", "----")

	for _, r := range rounds {
		out := " "
		if r.CashedOut {
			out = "yes"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-9.2f  %-6.2f  %-9.2f  %-5d  %-4s  %s\n",
			r.Outcome, r.Stake, r.Multiplier, r.Payout, r.SafeHits, out, dateStr)
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Rounds: %d  Crashes: %d  Lifeboats: %d  Cash-outs: %d\n",
		stats.Rounds, stats.Crashes, stats.Lifeboats, stats.CashOuts)
	fmt.Printf("Staked: %.2f  Returned: %.2f  RTP: %.1f%%  Best: %.2fx\n",
		stats.TotalStaked, stats.TotalReturned, stats.RTP()*100, stats.MaxMultiplier)
}
