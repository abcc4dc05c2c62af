// Package equity computes a hero hand's win and tie probabilities against
// one or more opponent ranges, by exhaustive enumeration or Monte Carlo
// sampling.
package equity

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/notation"
)

// checkInterval is how many scenarios or trials pass between cancellation checks
const checkInterval = 4096

// Calculator computes hand equity vs opponent ranges.
// It holds configuration only and is safe for concurrent use.
type Calculator struct {
	workers int
	sources SourceFactory
	logger  *zerolog.Logger
}

// Option is a functional option for configuring the Calculator
type Option func(*Calculator)

// WithWorkers sets the number of parallel workers (minimum 1)
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		c.workers = max(1, n)
	}
}

// WithSeed makes Monte Carlo results reproducible for a fixed worker count
func WithSeed(seed uint64) Option {
	return func(c *Calculator) {
		c.sources = SeededSources(seed)
	}
}

// WithSourceFactory supplies the random source of each Monte Carlo worker
func WithSourceFactory(f SourceFactory) Option {
	return func(c *Calculator) {
		c.sources = f
	}
}

// WithLogger sets the logger for engine events. Without it the logger
// attached to the call's context is used.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calculator) {
		c.logger = &l
	}
}

// NewCalculator creates a new equity calculator
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		workers: runtime.NumCPU(),
		sources: EntropySources(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Workers returns the number of parallel workers
func (c *Calculator) Workers() int {
	return c.workers
}

// Calculate validates the request, runs the selected engine and converts
// its tallies to probabilities
func (c *Calculator) Calculate(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	var (
		counts Counts
		err    error
	)
	switch req.Method {
	case Enumeration:
		counts, err = c.enumerate(ctx, req)
	case MonteCarlo:
		counts, err = c.simulate(ctx, req)
	}
	if err != nil {
		return Result{}, err
	}
	return counts.Result(), nil
}

// CalculateEquity is Calculate with the request spelled out
func (c *Calculator) CalculateEquity(
	ctx context.Context,
	hero []cards.Card,
	opponents []notation.Range,
	board []cards.Card,
	method Method,
	iterations int,
) (Result, error) {
	return c.Calculate(ctx, Request{
		Hero:       hero,
		Opponents:  opponents,
		Board:      board,
		Method:     method,
		Iterations: iterations,
	})
}

// Enumerate returns exact tallies over every legal deal. The request's
// method is ignored.
func (c *Calculator) Enumerate(ctx context.Context, req Request) (Counts, error) {
	req.Method = Enumeration
	if err := req.Validate(); err != nil {
		return Counts{}, err
	}
	return c.enumerate(ctx, req)
}

// Simulate returns tallies over req.Iterations random deals. The request's
// method is ignored.
func (c *Calculator) Simulate(ctx context.Context, req Request) (Counts, error) {
	req.Method = MonteCarlo
	if err := req.Validate(); err != nil {
		return Counts{}, err
	}
	return c.simulate(ctx, req)
}

func (c *Calculator) log(ctx context.Context) *zerolog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return zerolog.Ctx(ctx)
}

// sumCounts reduces per-worker tallies
func sumCounts(parts []Counts) Counts {
	return lo.Reduce(parts, func(acc Counts, part Counts, _ int) Counts {
		return acc.Add(part)
	}, Counts{})
}
