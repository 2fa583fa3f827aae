package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/chart"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Draw the capital chart with optional overlays",
	Long: `Draw the entry sequence as a text chart. Entries are spaced
evenly by position, not by elapsed time.

Examples:
  capital chart
  capital chart --ma 30 --trend
  capital chart --no-goal`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

var (
	chartMADays int
	chartNoGoal bool
	chartTrend  bool
	chartWidth  int
	chartHeight int
)

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().IntVar(&chartMADays, "ma", 0, "moving-average window (0 = config default, negative = off)")
	chartCmd.Flags().BoolVar(&chartNoGoal, "no-goal", false, "hide the target goal line")
	chartCmd.Flags().BoolVar(&chartTrend, "trend", false, "draw the least-squares trendline")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "chart width in columns (0 = config default)")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "chart height in rows (0 = config default)")
}

func runChart(cmd *cobra.Command, args []string) error {
	s, cfg, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	entries := s.Entries()
	if len(entries) == 0 {
		fmt.Println("No data to display. Add your first capital entry to see the chart.")
		return nil
	}

	ma := cfg.Chart.MovingAverageDays
	if chartMADays > 0 {
		ma = chartMADays
	} else if chartMADays < 0 {
		ma = 0
	}

	width := cfg.Chart.Width
	if chartWidth > 0 {
		width = chartWidth
	}
	height := cfg.Chart.Height
	if chartHeight > 0 {
		height = chartHeight
	}

	opts := chart.Options{
		ShowGoal:          !chartNoGoal,
		ShowTrend:         chartTrend,
		MovingAverageDays: ma,
	}
	size := chart.Size{W: float64(width - 1), H: float64(height - 1)}

	plot := chart.Project(entries, s.Target(), s.Currency(), opts, size)
	fmt.Print(chart.Render(plot))
	return nil
}
