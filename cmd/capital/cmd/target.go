package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/goal"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Show or change the savings target",
	Long: `Manage the target amount and date.

Subcommands:
  show - Display the target and progress toward it
  set  - Replace the target

Examples:
  capital target show
  capital target set 50000 --date 2027-01-01`,
}

var targetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the target and current progress",
	Args:  cobra.NoArgs,
	RunE:  runTargetShow,
}

var targetSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Replace the target amount (and optionally the date)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTargetSet,
}

var targetSetDate string

func init() {
	rootCmd.AddCommand(targetCmd)
	targetCmd.AddCommand(targetShowCmd)
	targetCmd.AddCommand(targetSetCmd)

	targetSetCmd.Flags().StringVarP(&targetSetDate, "date", "d", "", "target day as YYYY-MM-DD (default keep current)")
}

func runTargetShow(cmd *cobra.Command, args []string) error {
	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	tracker := goal.New(s)
	target := tracker.Target()
	cur := s.Currency()

	fmt.Printf("Target: %s by %s\n", cur.Format(target.Amount), target.Date.Format("Jan 2, 2006"))

	summary, ok := tracker.Summarize()
	if !ok {
		fmt.Println("No entries yet, progress unknown.")
		return nil
	}

	fmt.Printf("Current:   %s\n", cur.Format(summary.Current))
	fmt.Printf("Remaining: %s\n", cur.Format(summary.Remaining))
	fmt.Printf("Progress:  %.1f%%  %s\n", summary.Progress*100, progressBar(summary.Progress, 20))
	if summary.Achieved {
		fmt.Println("Goal reached!")
	}
	return nil
}

func runTargetSet(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parse amount: %w", err)
	}

	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	tracker := goal.New(s)

	date := tracker.Target().Date
	if targetSetDate != "" {
		date, err = parseDay(targetSetDate)
		if err != nil {
			return err
		}
	}

	if err := tracker.Update(amount, date); err != nil {
		return fmt.Errorf("update target: %w", err)
	}

	target := tracker.Target()
	fmt.Printf("Target set: %s by %s\n", s.Currency().Format(target.Amount), target.Date.Format("Jan 2, 2006"))
	return nil
}

// progressBar renders progress as a fixed-width bar, capped at full even
// when the true ratio exceeds 1.
func progressBar(progress float64, width int) string {
	if progress > 1 {
		progress = 1
	}
	if progress < 0 {
		progress = 0
	}
	filled := int(progress * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
