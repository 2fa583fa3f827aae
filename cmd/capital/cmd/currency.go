package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/entry"
)

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Show or change the session currency",
	Long: `Manage the currency amounts are displayed in.

Examples:
  capital currency list
  capital currency set JPY`,
}

var currencyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported currencies",
	Args:  cobra.NoArgs,
	RunE:  runCurrencyList,
}

var currencySetCmd = &cobra.Command{
	Use:   "set <code>",
	Short: "Switch the session currency",
	Args:  cobra.ExactArgs(1),
	RunE:  runCurrencySet,
}

func init() {
	rootCmd.AddCommand(currencyCmd)
	currencyCmd.AddCommand(currencyListCmd)
	currencyCmd.AddCommand(currencySetCmd)
}

func runCurrencyList(cmd *cobra.Command, args []string) error {
	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	active := s.Currency()
	for _, c := range entry.AllCurrencies() {
		marker := " "
		if c == active {
			marker = "*"
		}
		fmt.Printf("%s %s  %-4s %s\n", marker, c, c.Symbol(), c.Name())
	}
	return nil
}

func runCurrencySet(cmd *cobra.Command, args []string) error {
	s, _, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	c := entry.Currency(strings.ToUpper(args[0]))
	if err := s.SetCurrency(c); err != nil {
		return fmt.Errorf("set currency: %w", err)
	}

	fmt.Printf("Currency set to %s (%s)\n", c, c.Name())
	return nil
}
