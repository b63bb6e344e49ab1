// Package stats wraps the descriptive statistics used by aggregation
// and visualization, with zero-value fallbacks for empty input.
package stats

import (
	mstats "github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean, or 0 for empty input.
func Mean(values []float64) float64 {
	m, err := mstats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// Median returns the middle value, or 0 for empty input.
func Median(values []float64) float64 {
	m, err := mstats.Median(values)
	if err != nil {
		return 0
	}
	return m
}

// Percentile returns the p-th percentile (0-100), or 0 for empty input.
func Percentile(values []float64, p float64) float64 {
	v, err := mstats.Percentile(values, p)
	if err != nil {
		return 0
	}
	return v
}

// Round rounds to the nearest integer value.
func Round(v float64) float64 {
	r, err := mstats.Round(v, 0)
	if err != nil {
		return 0
	}
	return r
}
