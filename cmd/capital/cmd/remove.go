package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <YYYY-MM-DD>",
	Short: "Delete the entry for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	e, ok := s.EntryFor(day)
	if !ok {
		return fmt.Errorf("no entry on %s", args[0])
	}

	if err := s.Remove(e); err != nil {
		return fmt.Errorf("remove entry: %w", err)
	}

	fmt.Printf("Removed %s (%s)\n", e.DateString(), s.Currency().Format(e.Amount))
	return nil
}
