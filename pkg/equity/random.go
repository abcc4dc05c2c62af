package equity

import (
	"math/rand/v2"

	"lukechampine.com/frand"
)

// Source supplies uniform random integers to the Monte Carlo engine.
// A Source is owned by one worker and need not be safe for concurrent use.
type Source interface {
	// IntN returns a uniform integer in [0, n). n > 0.
	IntN(n int) int
}

// SourceFactory returns the source for one Monte Carlo worker
type SourceFactory func(worker int) Source

// frandSource adapts frand's RNG to Source
type frandSource struct {
	rng *frand.RNG
}

func (s frandSource) IntN(n int) int {
	return s.rng.Intn(n)
}

// EntropySources gives every worker its own fast, unseeded generator
func EntropySources() SourceFactory {
	return func(int) Source {
		return frandSource{rng: frand.New()}
	}
}

// SeededSources gives worker w a PCG stream keyed by (seed, w), so a fixed
// seed and worker count reproduce the same draws
func SeededSources(seed uint64) SourceFactory {
	return func(worker int) Source {
		return rand.New(rand.NewPCG(seed, uint64(worker)))
	}
}
