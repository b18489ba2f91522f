package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nordvik/icedrift/internal/games/icedrift"
)

var (
	flagOddsRounds    int
	flagOddsBet       float64
	flagOddsCashAfter int
)

var oddsCmd = &cobra.Command{
	Use:   "odds",
	Short: "Simulate rounds headlessly and report the realized RTP",
	Long: `Run the full round engine without a terminal UI for many rounds with
a flat bet and a fixed strategy, then report the realized return-to-player
ratio and outcome distribution.

The strategy cashes out after --cash-after safe hits; 0 means never cash
out and ride every round into the ice.

Examples:
  icedrift odds
  icedrift odds --rounds 100000 --cash-after 3
  icedrift odds --cash-after 0 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runOdds,
}

func init() {
	oddsCmd.Flags().IntVar(&flagOddsRounds, "rounds", 10000, "Number of rounds to simulate")
	oddsCmd.Flags().Float64Var(&flagOddsBet, "bet", 10, "Flat bet amount per round")
	oddsCmd.Flags().IntVar(&flagOddsCashAfter, "cash-after", 3, "Cash out after this many safe hits (0 = never)")
}

func runOdds(cmd *cobra.Command, args []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %d rounds, bet %.2f, cash out after %d safe hits...\n",
		flagOddsRounds, flagOddsBet, flagOddsCashAfter)

	report := icedrift.SimulateRTP(flagOddsRounds, flagOddsBet, flagOddsCashAfter, seed)

	fmt.Println()
	fmt.Printf("Rounds:     %d\n", report.Rounds)
	fmt.Printf("Staked:     %.2f\n", report.TotalStaked)
	fmt.Printf("Returned:   %.2f\n", report.TotalReturned)
	fmt.Printf("RTP:        %.2f%%\n", report.RTP*100)
	fmt.Println()
	fmt.Printf("Crashes:    %d\n", report.Crashes)
	fmt.Printf("Lifeboats:  %d\n", report.Lifeboats)
	fmt.Printf("Cash-outs:  %d\n", report.CashOuts)
	fmt.Printf("Best mult:  %.2fx\n", report.MaxMultiplier)
	fmt.Printf("Avg hits:   %.2f\n", report.AvgSafeHits)
}
