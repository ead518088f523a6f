// Package statistics accumulates per-player results over many simulated hands.
package statistics

import (
	"fmt"
	"math"
	"slices"
)

// HandResult is one player's outcome for one hand, in big blinds
type HandResult struct {
	NetBB    float64
	Showdown bool // the hand was decided by showing cards
	Won      bool
	PotBB    float64
}

// Statistics tracks a running summary of hand results
type Statistics struct {
	Hands        int
	Wins         int
	ShowdownWins int
	SumBB        float64
	SumBB2       float64 // sum of squares for variance
	ShowdownBB   float64
	FoldEquityBB float64 // result of hands that ended without a showdown
	MaxPotBB     float64

	values []float64
}

// Add records one hand
func (s *Statistics) Add(r HandResult) {
	s.Hands++
	s.SumBB += r.NetBB
	s.SumBB2 += r.NetBB * r.NetBB
	s.values = append(s.values, r.NetBB)

	if r.Won {
		s.Wins++
		if r.Showdown {
			s.ShowdownWins++
		}
	}
	if r.Showdown {
		s.ShowdownBB += r.NetBB
	} else {
		s.FoldEquityBB += r.NetBB
	}
	s.MaxPotBB = max(s.MaxPotBB, r.PotBB)
}

// Mean returns big blinds won per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	margin := 1.96 * s.StdError()
	return s.Mean() - margin, s.Mean() + margin
}

// Median returns the median result
func (s *Statistics) Median() float64 {
	n := len(s.values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(s.values)
	slices.Sort(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// WinRate returns the fraction of hands won
func (s *Statistics) WinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Hands)
}

// BB100 returns big blinds won per hundred hands
func (s *Statistics) BB100() float64 {
	return s.Mean() * 100
}

// Summary renders the headline numbers on one line
func (s *Statistics) Summary() string {
	lo, hi := s.ConfidenceInterval95()
	return fmt.Sprintf("%d hands, %.2f bb/100 (95%% CI %.2f to %.2f), won %.1f%%",
		s.Hands, s.BB100(), lo*100, hi*100, s.WinRate()*100)
}
