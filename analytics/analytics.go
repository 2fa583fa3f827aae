// Package analytics computes summaries over the sorted entry sequence.
// All functions are pure; they never mutate their input.
package analytics

import (
	"github.com/rustyeddy/capital/entry"
)

// MovingAverage returns the mean amount over the windowDays most recent
// entries up to and including e, by sequence position.
//
// The window counts positions in the sorted sequence, not calendar days:
// with sparse entries a "7-day" average can span far more than 7 days.
// If e is not found in entries (a stale value not obtained from the
// store), its position defaults to 0.
func MovingAverage(entries []entry.Entry, e entry.Entry, windowDays int) float64 {
	if len(entries) == 0 {
		return 0
	}

	i := 0
	for k := range entries {
		if entries[k].ID == e.ID {
			i = k
			break
		}
	}

	start := i - windowDays + 1
	if start < 0 {
		start = 0
	}

	sum := 0.0
	for _, en := range entries[start : i+1] {
		sum += en.Amount
	}
	return sum / float64(i-start+1)
}

// Trend is a least-squares linear fit of amount against sequence index.
type Trend struct {
	Slope     float64
	Intercept float64
}

// At returns the fitted amount at sequence index i.
func (t Trend) At(i int) float64 {
	return t.Intercept + t.Slope*float64(i)
}

// Trendline fits amounts against their zero-based sequence index. ok is
// false when fewer than two entries exist. With indices 0..n-1 the
// denominator is non-zero for n >= 2, so no further guard is needed.
func Trendline(entries []entry.Entry) (Trend, bool) {
	n := len(entries)
	if n < 2 {
		return Trend{}, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, e := range entries {
		x := float64(i)
		sumX += x
		sumY += e.Amount
		sumXY += x * e.Amount
		sumXX += x * x
	}

	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	return Trend{Slope: slope, Intercept: intercept}, true
}
