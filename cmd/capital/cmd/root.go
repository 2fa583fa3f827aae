package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/config"
	"github.com/rustyeddy/capital/store"
)

var rootCmd = &cobra.Command{
	Use:   "capital",
	Short: "Track your net worth and progress toward a savings goal",
	Long: `Capital keeps a one-entry-per-day record of your net worth and
derives analytics for it:

  - Moving averages and a least-squares trendline
  - Progress toward a target amount and date
  - A chart with goal, zero and trend overlays

Entries live in a local SQLite database (or a JSON file) and every change
is saved immediately.`,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default settings when omitted)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

// openStore restores the session from the configured backend. The caller
// must invoke the returned cleanup.
func openStore() (*store.Store, *config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	gw, err := cfg.Storage.Open()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open storage: %w", err)
	}

	s := store.Open(gw, log.Logger)
	cleanup := func() {
		if err := gw.Close(); err != nil {
			log.Warn().Err(err).Msg("close storage")
		}
	}
	return s, cfg, cleanup, nil
}

func parseDay(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}
