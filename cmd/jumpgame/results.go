package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/name-jumper/internal/storage"
)

var (
	flagResultsName    string
	flagResultsLimit   int
	flagResultsSession string
	flagResultsClear   bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show finished sessions",
	Long: `Display recent finished sessions and win/loss stats per name.

Examples:
  jumpgame results
  jumpgame results --name Ada --limit 5
  jumpgame results --session 6f1c7c1e-3b8a-4d57-9d1a-0c7c2d9f5e11
  jumpgame results --name Ada --clear`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagResultsName, "name", "", "Only show results for this name")
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of recent sessions to show")
	resultsCmd.Flags().StringVar(&flagResultsSession, "session", "", "Show a single session by ID")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete all results for --name")
}

func runResults(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagResultsClear:
		if flagResultsName == "" {
			return errors.New("--clear needs --name")
		}
		if err := store.ClearResults(flagResultsName); err != nil {
			return err
		}
		fmt.Printf("Cleared results for %s\n", flagResultsName)
		return nil

	case flagResultsSession != "":
		r, err := store.ResultBySession(flagResultsSession)
		if err != nil {
			return err
		}
		if r == nil {
			return fmt.Errorf("no session %s", flagResultsSession)
		}
		fmt.Printf("Session  %s\nName     %s\nResult   %s\nLetters  %d\nTicks    %d\nDate     %s\n",
			r.SessionID, r.Name, r.Outcome, r.Obstacles, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	}

	results, err := store.RecentResults(flagResultsName, flagResultsLimit)
	if err != nil {
		return err
	}

	if flagResultsName != "" {
		fmt.Printf("Recent sessions - %s\n", flagResultsName)
	} else {
		fmt.Println("Recent sessions")
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumpgame play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-16s  %-4s  %-7s  %-6s  %s\n", "Name", "Res", "Letters", "Ticks", "Date")
	fmt.Printf("  %-16s  %-4s  %-7s  %-6s  %s\n", "----", "---", "-------", "-----", "----")
	for _, r := range results {
		fmt.Printf("  %-16s  %-4s  %-7d  %-6d  %s\n",
			truncate(r.Name, 16), r.Outcome, r.Obstacles, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if flagResultsName != "" {
		stats, err := store.Stats(flagResultsName)
		if err != nil {
			return err
		}
		printStats([]storage.PlayerStats{*stats})
		return nil
	}

	all, err := store.AllStats()
	if err != nil {
		return err
	}
	printStats(all)
	return nil
}

func printStats(all []storage.PlayerStats) {
	fmt.Printf("  %-16s  %-5s  %-4s  %-6s  %s\n", "Name", "Games", "Won", "Lost", "Longest run")
	fmt.Printf("  %-16s  %-5s  %-4s  %-6s  %s\n", "----", "-----", "---", "----", "-----------")
	for _, ps := range all {
		fmt.Printf("  %-16s  %-5d  %-4d  %-6d  %d ticks\n",
			truncate(ps.Name, 16), ps.Games, ps.Wins, ps.Losses, ps.LongestRun)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
