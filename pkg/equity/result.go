package equity

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Counts are raw showdown tallies from the hero's point of view
type Counts struct {
	Wins  int64 `json:"wins" yaml:"wins"`
	Ties  int64 `json:"ties" yaml:"ties"`
	Total int64 `json:"total" yaml:"total"`
}

// Add returns the sum of two tallies
func (c Counts) Add(other Counts) Counts {
	return Counts{
		Wins:  c.Wins + other.Wins,
		Ties:  c.Ties + other.Ties,
		Total: c.Total + other.Total,
	}
}

// Losses returns the showdowns the hero neither won nor tied
func (c Counts) Losses() int64 {
	return c.Total - c.Wins - c.Ties
}

// Result converts tallies to probabilities. Zero showdowns give an
// all-zero result.
func (c Counts) Result() Result {
	if c.Total == 0 {
		return Result{}
	}
	total := float64(c.Total)
	return Result{
		WinProbability: float64(c.Wins) / total,
		TieProbability: float64(c.Ties) / total,
		SampleSize:     c.Total,
	}
}

// Result is the hero's equity against the field
type Result struct {
	WinProbability float64 `json:"win_probability" yaml:"win_probability"`
	TieProbability float64 `json:"tie_probability" yaml:"tie_probability"`
	SampleSize     int64   `json:"sample_size" yaml:"sample_size"`
}

// LossProbability is the remainder after wins and ties
func (r Result) LossProbability() float64 {
	if r.SampleSize == 0 {
		return 0
	}
	return math.Max(0, 1-r.WinProbability-r.TieProbability)
}

// Equity is the hero's pot share with ties split evenly (win + tie/2)
func (r Result) Equity() float64 {
	return r.WinProbability + r.TieProbability/2
}

// ConfidenceInterval returns the normal-approximation interval around
// Equity at the given level (e.g. 0.95), clamped to [0, 1].
// Only meaningful for sampled results; exact results have no sampling error.
func (r Result) ConfidenceInterval(level float64) (lo, hi float64) {
	eq := r.Equity()
	if r.SampleSize == 0 || level <= 0 {
		return eq, eq
	}
	if level >= 1 {
		return 0, 1
	}

	// Per-trial score is 1, 1/2 or 0
	second := r.WinProbability + r.TieProbability/4
	variance := math.Max(0, second-eq*eq)
	stderr := math.Sqrt(variance / float64(r.SampleSize))

	half := zValue(level) * stderr
	return math.Max(0, eq-half), math.Min(1, eq+half)
}

// zValue returns the two-tailed standard normal critical value for level
func zValue(level float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	return dist.Quantile((1 + level) / 2)
}
