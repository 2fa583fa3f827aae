package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all entries and restore default target and currency",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var resetYes bool

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		return fmt.Errorf("reset deletes all data; re-run with --yes to confirm")
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	s.Reset()
	fmt.Println("All data reset to defaults.")
	return nil
}
