package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Record today's capital (or another day's with --date)",
	Long: `Record a capital entry for one calendar day. A second add on the
same day replaces the earlier amount.

Examples:
  capital add 12500.50
  capital add -2000 --date 2026-01-15`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var addDate string

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "entry day as YYYY-MM-DD (default today)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parse amount: %w", err)
	}

	day := time.Now()
	if addDate != "" {
		day, err = parseDay(addDate)
		if err != nil {
			return err
		}
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	_, existed := s.EntryFor(day)

	e, err := s.Upsert(day, amount)
	if err != nil {
		return fmt.Errorf("add entry: %w", err)
	}

	verb := "Added"
	if existed {
		verb = "Updated"
	}
	fmt.Printf("%s %s: %s\n", verb, e.DateString(), s.Currency().Format(e.Amount))
	return nil
}
