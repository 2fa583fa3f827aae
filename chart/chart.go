// Package chart projects the entry sequence and its overlays into plot
// coordinates. Entries are spaced uniformly by sequence position, not by
// elapsed time between them.
package chart

import (
	"fmt"

	"github.com/rustyeddy/capital/analytics"
	"github.com/rustyeddy/capital/entry"
)

// Size is the plot area in drawing units. Y grows downward; the top edge
// maps to the maximum value.
type Size struct {
	W float64
	H float64
}

// Options selects the drawn overlays.
type Options struct {
	ShowGoal          bool
	ShowTrend         bool
	MovingAverageDays int // 0 disables the moving-average overlay
}

// Point is a plot coordinate.
type Point struct {
	X float64
	Y float64
}

// Change classifies an entry against its predecessor in the sequence.
type Change int

const (
	ChangeNone Change = iota // first point, nothing to compare against
	ChangeUp                 // amount >= previous
	ChangeDown
)

// PlotPoint is a projected entry.
type PlotPoint struct {
	Point
	Entry    entry.Entry
	Negative bool // amount below zero
	Change   Change
}

// Segment connects two consecutive entries, colored by direction.
type Segment struct {
	From   Point
	To     Point
	Change Change
}

// Line is a horizontal overlay at a fixed height.
type Line struct {
	Y     float64
	Label string
}

// Plot holds every drawable element for one projection.
type Plot struct {
	Size          Size
	Min           float64 // adjusted vertical bounds
	Max           float64
	Points        []PlotPoint
	Segments      []Segment
	MovingAverage []Point
	Trend         []Point // two endpoints when drawn
	Goal          *Line
	Zero          *Line
	AxisLabels    []string // 5 labels, max down to min
}

// Project maps entries and the selected overlays into coordinates inside
// size. The vertical bounds cover the data, extended to the target amount
// when the goal overlay is shown, padded by 5% of the range with a floor
// of 100 above and below.
func Project(entries []entry.Entry, target entry.Target, cur entry.Currency, opts Options, size Size) Plot {
	min, max := bounds(entries, target, opts.ShowGoal)

	pad := (max - min) * 0.05
	if pad < 100 {
		pad = 100
	}
	adjMin := min - pad
	adjMax := max + pad

	p := Plot{Size: size, Min: adjMin, Max: adjMax}

	x := func(k int) float64 {
		d := len(entries) - 1
		if d < 1 {
			d = 1
		}
		return size.W * float64(k) / float64(d)
	}
	y := func(v float64) float64 {
		if adjMax == adjMin {
			// zero value range, fall back to mid-height
			return size.H / 2
		}
		return size.H * (1 - (v-adjMin)/(adjMax-adjMin))
	}

	for k, e := range entries {
		pp := PlotPoint{
			Point:    Point{X: x(k), Y: y(e.Amount)},
			Entry:    e,
			Negative: e.Amount < 0,
		}
		if k > 0 {
			prev := entries[k-1]
			if e.Amount >= prev.Amount {
				pp.Change = ChangeUp
			} else {
				pp.Change = ChangeDown
			}
			p.Segments = append(p.Segments, Segment{
				From:   p.Points[k-1].Point,
				To:     pp.Point,
				Change: pp.Change,
			})
		}
		p.Points = append(p.Points, pp)
	}

	if opts.MovingAverageDays > 0 {
		for k, e := range entries {
			avg := analytics.MovingAverage(entries, e, opts.MovingAverageDays)
			p.MovingAverage = append(p.MovingAverage, Point{X: x(k), Y: y(avg)})
		}
	}

	if opts.ShowTrend {
		if tr, ok := analytics.Trendline(entries); ok {
			n := len(entries)
			p.Trend = []Point{
				{X: x(0), Y: y(tr.At(0))},
				{X: x(n - 1), Y: y(tr.At(n - 1))},
			}
		}
	}

	if opts.ShowGoal && target.Amount >= adjMin && target.Amount <= adjMax {
		p.Goal = &Line{
			Y:     y(target.Amount),
			Label: fmt.Sprintf("%s by %s", cur.Format(target.Amount), target.Date.Format("Jan 2, 2006")),
		}
	}

	if adjMin <= 0 && adjMax >= 0 {
		p.Zero = &Line{Y: y(0), Label: cur.Format(0)}
	}

	for i := 0; i < 5; i++ {
		v := adjMax - (adjMax-adjMin)*float64(i)/4
		p.AxisLabels = append(p.AxisLabels, fmt.Sprintf("%s%d", cur.Symbol(), int(v)))
	}

	return p
}

// bounds returns the raw value range before padding: the data min/max,
// extended to the target amount only when the goal overlay is shown.
func bounds(entries []entry.Entry, target entry.Target, showGoal bool) (min, max float64) {
	for i, e := range entries {
		if i == 0 || e.Amount < min {
			min = e.Amount
		}
		if i == 0 || e.Amount > max {
			max = e.Amount
		}
	}
	if showGoal {
		if target.Amount > max {
			max = target.Amount
		}
		if target.Amount < min {
			min = target.Amount
		}
	}
	return min, max
}
