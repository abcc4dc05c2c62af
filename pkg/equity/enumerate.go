package equity

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/notation"
)

// enumJob is one slice of the scenario space: a conflict-free assignment of
// combos to seats, and the lowest undealt card the board completions start
// from. first is -1 when the board is already complete.
type enumJob struct {
	deal  []int
	used  cards.CardSet
	first int
}

// enumerate tallies every conflict-free assignment of one combo per
// opponent crossed with every completion of the board.
func (c *Calculator) enumerate(ctx context.Context, req Request) (Counts, error) {
	if err := ctx.Err(); err != nil {
		return Counts{}, err
	}
	logger := c.log(ctx)

	known := req.knownCards()
	seats, ok := prune(req.Opponents, known)
	if !ok {
		logger.Debug().Msg("enumeration-range-exhausted")
		return Counts{}, nil
	}

	need := 5 - len(req.Board)
	pool := cards.DeckSize - known.Len() - 2*len(seats)
	workers := c.workers
	start := time.Now()

	logger.Debug().
		Int("workers", workers).
		Int("opponents", len(seats)).
		Stringer("street", notation.GetStreet(len(req.Board))).
		Int("runouts-per-deal", combin.Binomial(pool, need)).
		Msg("enumeration-start")

	jobs := make(chan enumJob, 4*workers)
	perWorker := make([]Counts, workers)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		s := &splitter{seats: seats, need: need, deal: make([]int, len(seats)), jobs: jobs}
		return s.assign(gctx, 0, known)
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			e := &enumerator{
				seats: seats,
				table: newTable(req.Hero, req.Board, len(seats)),
				need:  need,
				idx:   make([]int, max(need-1, 0)),
			}
			err := e.run(gctx, jobs)
			perWorker[w] = e.counts
			return err
		})
	}
	if err := g.Wait(); err != nil {
		logger.Debug().Err(err).Msg("enumeration-aborted")
		return Counts{}, err
	}

	counts := sumCounts(perWorker)
	logger.Debug().
		Int64("scenarios", counts.Total).
		Int64("wins", counts.Wins).
		Int64("ties", counts.Ties).
		Dur("elapsed", time.Since(start)).
		Msg("enumeration-finished")
	return counts, nil
}

// splitter walks the seat assignments and hands them out as jobs. Each
// assignment is split further by the lowest board card so a single
// heads-up deal still spreads across workers.
type splitter struct {
	seats [][]candidate
	need  int
	deal  []int
	jobs  chan<- enumJob
}

// assign seats opponent depth with each combo not touching used
func (s *splitter) assign(ctx context.Context, depth int, used cards.CardSet) error {
	if depth == len(s.seats) {
		return s.emit(ctx, used)
	}
	for k, cand := range s.seats[depth] {
		if cand.set.Overlaps(used) {
			continue
		}
		s.deal[depth] = k
		if err := s.assign(ctx, depth+1, used.Union(cand.set)); err != nil {
			return err
		}
	}
	return nil
}

func (s *splitter) emit(ctx context.Context, used cards.CardSet) error {
	deal := append([]int(nil), s.deal...)
	if s.need == 0 {
		return s.send(ctx, enumJob{deal: deal, used: used, first: -1})
	}
	left := cards.DeckSize - used.Len()
	for first := 0; first <= left-s.need; first++ {
		if err := s.send(ctx, enumJob{deal: deal, used: used, first: first}); err != nil {
			return err
		}
	}
	return nil
}

func (s *splitter) send(ctx context.Context, job enumJob) error {
	select {
	case s.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// enumerator evaluates the jobs one worker receives. Counts are plain sums,
// so the totals do not depend on which worker ran which job.
type enumerator struct {
	seats [][]candidate
	table *table
	need  int
	pool  []cards.Card
	idx   []int

	visited int64
	counts  Counts
}

func (e *enumerator) run(ctx context.Context, jobs <-chan enumJob) error {
	for job := range jobs {
		if err := e.work(ctx, job); err != nil {
			return err
		}
	}
	return nil
}

// work completes the board every way that uses pool[job.first] as its
// lowest new card
func (e *enumerator) work(ctx context.Context, job enumJob) error {
	for i, k := range job.deal {
		e.table.seat(i, e.seats[i][k].combo)
	}
	if job.first < 0 {
		return e.visit(ctx)
	}

	e.pool = cards.AppendRemaining(e.pool[:0], job.used)
	e.table.runout(0, e.pool[job.first])
	if e.need == 1 {
		return e.visit(ctx)
	}

	rest := e.pool[job.first+1:]
	gen := combin.NewCombinationGenerator(len(rest), e.need-1)
	for gen.Next() {
		gen.Combination(e.idx)
		for j, i := range e.idx {
			e.table.runout(j+1, rest[i])
		}
		if err := e.visit(ctx); err != nil {
			return err
		}
	}
	return nil
}

// visit tallies the current scenario. The context is checked every
// checkInterval scenarios.
func (e *enumerator) visit(ctx context.Context) error {
	if e.visited%checkInterval == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	e.visited++
	e.counts.tally(e.table.showdown())
	return nil
}
