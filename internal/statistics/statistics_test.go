package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyStatistics(t *testing.T) {
	t.Parallel()

	var s Statistics
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdError())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.WinRate())
}

func TestStatisticsAccumulate(t *testing.T) {
	t.Parallel()

	var s Statistics
	s.Add(HandResult{NetBB: 10, Showdown: true, Won: true, PotBB: 20})
	s.Add(HandResult{NetBB: -2, PotBB: 3})
	s.Add(HandResult{NetBB: 1.5, Won: true, PotBB: 3.5})
	s.Add(HandResult{NetBB: -5.5, Showdown: true, PotBB: 11})

	assert.Equal(t, 4, s.Hands)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.ShowdownWins)
	assert.InDelta(t, 1.0, s.Mean(), 1e-9)
	assert.InDelta(t, 100.0, s.BB100(), 1e-9)
	assert.InDelta(t, 4.5, s.ShowdownBB, 1e-9)
	assert.InDelta(t, -0.5, s.FoldEquityBB, 1e-9)
	assert.InDelta(t, 20.0, s.MaxPotBB, 1e-9)
	assert.InDelta(t, -0.25, s.Median(), 1e-9)
	assert.InDelta(t, 0.5, s.WinRate(), 1e-9)

	// Sample variance of {10, -2, 1.5, -5.5}
	want := (81 + 9 + 0.25 + 42.25) / 3
	assert.InDelta(t, want, s.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(want)/2, s.StdError(), 1e-9)

	lo, hi := s.ConfidenceInterval95()
	assert.InDelta(t, s.Mean(), (lo+hi)/2, 1e-9)
	assert.Contains(t, s.Summary(), "4 hands")
}
