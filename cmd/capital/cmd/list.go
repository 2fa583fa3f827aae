package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent entries with day-over-day change",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var listAll bool

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "show every entry, not just the most recent")
}

func runList(cmd *cobra.Command, args []string) error {
	s, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	entries := s.Entries()
	if len(entries) == 0 {
		fmt.Println("No entries yet. Record one with: capital add <amount>")
		return nil
	}

	start := 0
	if !listAll && len(entries) > cfg.Recent {
		start = len(entries) - cfg.Recent
	}

	cur := s.Currency()
	// newest first, like the original recent-entries panel
	for i := len(entries) - 1; i >= start; i-- {
		e := entries[i]
		line := fmt.Sprintf("%-12s  %14s", e.DateString(), cur.Format(e.Amount))

		if prev, ok := s.Previous(e.Date); ok {
			change := e.Amount - prev.Amount
			sign := "+"
			if change < 0 {
				sign = ""
			}
			line += fmt.Sprintf("  (%s%s)", sign, cur.Format(change))
		}
		fmt.Println(line)
	}
	return nil
}
