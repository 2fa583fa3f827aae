package chart

import (
	"math"
	"strings"
)

// Glyphs used by the text renderer, roughly in drawing order so later
// elements overwrite earlier ones.
const (
	glyphZero     = '.'
	glyphGoal     = '='
	glyphTrend    = '~'
	glyphMA       = '+'
	glyphSegment  = '-'
	glyphPoint    = 'o'
	glyphNegative = 'x'
)

// Render draws the plot as a text grid with the axis labels in a left
// gutter. The plot must have been projected with a Size matching a
// character grid (W = columns-1, H = rows-1).
func Render(p Plot) string {
	cols := int(p.Size.W) + 1
	rows := int(p.Size.H) + 1
	if cols < 2 || rows < 2 {
		return ""
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	set := func(pt Point, g rune) {
		c := int(math.Round(pt.X))
		r := int(math.Round(pt.Y))
		if r >= 0 && r < rows && c >= 0 && c < cols {
			grid[r][c] = g
		}
	}
	hline := func(l *Line, g rune) {
		if l == nil {
			return
		}
		r := int(math.Round(l.Y))
		if r < 0 || r >= rows {
			return
		}
		for c := 0; c < cols; c++ {
			grid[r][c] = g
		}
	}

	hline(p.Zero, glyphZero)
	hline(p.Goal, glyphGoal)

	if len(p.Trend) == 2 {
		drawLine(set, p.Trend[0], p.Trend[1], glyphTrend)
	}
	for i := 1; i < len(p.MovingAverage); i++ {
		drawLine(set, p.MovingAverage[i-1], p.MovingAverage[i], glyphMA)
	}
	for _, s := range p.Segments {
		drawLine(set, s.From, s.To, glyphSegment)
	}
	for _, pp := range p.Points {
		g := glyphPoint
		if pp.Negative {
			g = glyphNegative
		}
		set(pp.Point, g)
	}

	gutter := 0
	for _, l := range p.AxisLabels {
		if len(l) > gutter {
			gutter = len(l)
		}
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		label := axisLabelForRow(p.AxisLabels, r, rows)
		b.WriteString(pad(label, gutter))
		b.WriteString(" |")
		b.WriteString(string(grid[r]))
		b.WriteByte('\n')
	}
	if p.Goal != nil {
		b.WriteString("goal: " + p.Goal.Label + "\n")
	}
	return b.String()
}

// axisLabelForRow places the 5 tick labels on evenly spaced rows.
func axisLabelForRow(labels []string, row, rows int) string {
	for i, l := range labels {
		if row == i*(rows-1)/4 {
			return l
		}
	}
	return ""
}

func pad(s string, width int) string {
	// byte length is fine for the padded gutter; currency symbols render a
	// column short at worst
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// drawLine walks from a to b one step per column (or row, whichever is
// longer) so segments stay connected on the grid.
func drawLine(set func(Point, rune), a, b Point, g rune) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		set(Point{X: a.X + dx*t, Y: a.Y + dy*t}, g)
	}
}
