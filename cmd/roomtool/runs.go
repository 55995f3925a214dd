package main

import (
	"fmt"
	"os"
	"time"

	"github.com/automoto/cavefall/storage"
	"github.com/spf13/cobra"
)

var (
	flagRunsLimit   int
	flagRunsFastest bool
	flagRunsClear   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the history of finished runs",
	Long: `Display the most recent runs recorded by the game.

Examples:
  roomtool runs
  roomtool runs --fastest --limit 5
  roomtool runs --clear`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsFastest, "fastest", false, "Show the fastest completed runs instead")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the whole history")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	var runs []storage.Run
	if flagRunsFastest {
		runs, err = store.FastestRuns(flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagRunsFastest {
		fmt.Println("Fastest Runs")
	} else {
		fmt.Println("Recent Runs")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-5s  %-5s  %-6s  %-5s  %-9s  %-8s  %s\n", "#", "Rooms", "Deaths", "Turns", "Time", "Finished", "Date")
	fmt.Printf("  %-5s  %-5s  %-6s  %-5s  %-9s  %-8s  %s\n", "-", "-----", "------", "-----", "----", "--------", "----")
	for _, r := range runs {
		finished := "no"
		if r.Completed {
			finished = "yes"
		}
		fmt.Printf("  %-5d  %-5d  %-6d  %-5d  %-9s  %-8s  %s\n",
			r.ID, r.Rooms, r.Deaths, r.Rotations, formatDuration(r.Duration), finished,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	sum, err := store.Summarize()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Finished: %d  Deaths: %d\n", sum.Runs, sum.Completed, sum.TotalDeaths)
	if sum.BestDuration > 0 {
		fmt.Printf("Best: %s\n", formatDuration(sum.BestDuration))
	}
}

// formatDuration prints d as m:ss.t.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second / 10)
	m := int(d / time.Minute)
	s := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", m, s)
}
