package equity

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/notation"
)

// maxDealAttempts bounds how often one trial is redealt when the opponents'
// hands keep colliding
const maxDealAttempts = 1 << 16

// simulate tallies req.Iterations random deals, split across workers
func (c *Calculator) simulate(ctx context.Context, req Request) (Counts, error) {
	if err := ctx.Err(); err != nil {
		return Counts{}, err
	}
	logger := c.log(ctx)

	known := req.knownCards()
	seats, ok := prune(req.Opponents, known)
	if !ok {
		logger.Debug().Msg("montecarlo-range-exhausted")
		return Counts{}, nil
	}
	if !dealable(seats, known) {
		logger.Debug().Msg("montecarlo-ranges-starved")
		return Counts{}, nil
	}

	workers := min(c.workers, req.Iterations)
	perWorkerTrials := req.Iterations / workers
	remainder := req.Iterations % workers
	start := time.Now()

	logger.Debug().
		Int("workers", workers).
		Int("iterations", req.Iterations).
		Int("opponents", len(seats)).
		Stringer("street", notation.GetStreet(len(req.Board))).
		Msg("montecarlo-start")

	perWorker := make([]Counts, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		trials := perWorkerTrials
		if w < remainder {
			trials++
		}
		src := c.sources(w)
		g.Go(func() error {
			d := &dealer{
				seats: seats,
				known: known,
				table: newTable(req.Hero, req.Board, len(seats)),
				need:  5 - len(req.Board),
				pool:  make([]cards.Card, 0, cards.DeckSize),
				src:   src,
			}
			counts, err := d.run(gctx, trials)
			perWorker[w] = counts
			return err
		})
	}
	if err := g.Wait(); err != nil {
		logger.Debug().Err(err).Msg("montecarlo-aborted")
		return Counts{}, err
	}

	counts := sumCounts(perWorker)
	elapsed := time.Since(start)
	logger.Debug().
		Int64("trials", counts.Total).
		Int64("wins", counts.Wins).
		Int64("ties", counts.Ties).
		Dur("elapsed", elapsed).
		Float64("trials-per-sec", float64(counts.Total)/max(elapsed.Seconds(), 1e-9)).
		Msg("montecarlo-finished")
	return counts, nil
}

// dealer runs one worker's share of trials with its own source
type dealer struct {
	seats [][]candidate
	known cards.CardSet
	table *table
	need  int
	pool  []cards.Card
	src   Source
}

func (d *dealer) run(ctx context.Context, trials int) (Counts, error) {
	var counts Counts
	for i := 0; i < trials; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return counts, err
			}
		}
		if err := d.deal(); err != nil {
			return counts, err
		}
		counts.tally(d.table.showdown())
	}
	return counts, nil
}

// deal sets up one trial. Every seat draws uniformly from its whole range
// and the deal is thrown away if two seats share a card, so accepted deals
// are uniform over the conflict-free assignments.
func (d *dealer) deal() error {
	for attempt := 0; attempt < maxDealAttempts; attempt++ {
		if d.tryDeal() {
			return nil
		}
	}
	return fmt.Errorf("%w: no deal without shared cards found in %d attempts",
		ErrNoAvailableCards, maxDealAttempts)
}

// tryDeal draws each opponent's hand, then completes the board with a
// partial Fisher-Yates shuffle of the undealt cards
func (d *dealer) tryDeal() bool {
	used := d.known
	for i, seat := range d.seats {
		cand := seat[d.src.IntN(len(seat))]
		if cand.set.Overlaps(used) {
			return false
		}
		d.table.seat(i, cand.combo)
		used = used.Union(cand.set)
	}

	d.pool = cards.AppendRemaining(d.pool[:0], used)
	for j := 0; j < d.need; j++ {
		k := j + d.src.IntN(len(d.pool)-j)
		d.pool[j], d.pool[k] = d.pool[k], d.pool[j]
		d.table.runout(j, d.pool[j])
	}
	return true
}
