package equity

import (
	"github.com/samber/lo"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/notation"
)

// outcome classifies one showdown from the hero's point of view
type outcome uint8

const (
	loss outcome = iota
	tie
	win
)

// tally records one showdown
func (c *Counts) tally(o outcome) {
	c.Total++
	switch o {
	case win:
		c.Wins++
	case tie:
		c.Ties++
	}
}

// candidate is a combo with its cards precomputed as a set
type candidate struct {
	combo notation.Combo
	set   cards.CardSet
}

// prune drops the combos of each range that collide with dead cards.
// A range left with a single combo forces that hand, so its cards are
// removed from every other range until nothing changes.
// ok is false when some range has nothing left.
func prune(ranges []notation.Range, dead cards.CardSet) (seats [][]candidate, ok bool) {
	seats = make([][]candidate, len(ranges))
	for i, r := range ranges {
		seats[i] = lo.FilterMap(r.Combos(), func(c notation.Combo, _ int) (candidate, bool) {
			set := c.Set()
			return candidate{combo: c, set: set}, !set.Overlaps(dead)
		})
		if len(seats[i]) == 0 {
			return nil, false
		}
	}

	forced := make([]bool, len(seats))
	for changed := true; changed; {
		changed = false
		for i, seat := range seats {
			if forced[i] || len(seat) != 1 {
				continue
			}
			forced[i] = true
			changed = true
			for j := range seats {
				if j == i {
					continue
				}
				seats[j] = lo.Filter(seats[j], func(c candidate, _ int) bool {
					return !c.set.Overlaps(seat[0].set)
				})
				if len(seats[j]) == 0 {
					return nil, false
				}
			}
		}
	}
	return seats, true
}

// dealable reports whether every seat can be given a combo without two
// seats sharing a card
func dealable(seats [][]candidate, used cards.CardSet) bool {
	if len(seats) == 0 {
		return true
	}
	for _, cand := range seats[0] {
		if !cand.set.Overlaps(used) && dealable(seats[1:], used.Union(cand.set)) {
			return true
		}
	}
	return false
}

// table holds each player's seven cards for one deal. Slots 0 and 1 are
// hole cards, slots 2..6 the board; the first known board slots never change.
type table struct {
	hero  [7]cards.Card
	opps  [][7]cards.Card
	known int
}

func newTable(hero, board []cards.Card, opponents int) *table {
	t := &table{
		opps:  make([][7]cards.Card, opponents),
		known: len(board),
	}
	copy(t.hero[:2], hero)
	copy(t.hero[2:], board)
	for i := range t.opps {
		copy(t.opps[i][2:], board)
	}
	return t
}

// seat gives opponent i their hole cards
func (t *table) seat(i int, c notation.Combo) {
	t.opps[i][0] = c.Card1
	t.opps[i][1] = c.Card2
}

// runout sets the j-th unknown board card for every player
func (t *table) runout(j int, c cards.Card) {
	slot := 2 + t.known + j
	t.hero[slot] = c
	for i := range t.opps {
		t.opps[i][slot] = c
	}
}

// showdown scores the hands. The hero wins by beating every opponent and
// ties by tying at least one while losing to none.
func (t *table) showdown() outcome {
	hero, _ := cards.Score(t.hero[:])

	result := win
	for i := range t.opps {
		opp, _ := cards.Score(t.opps[i][:])
		switch {
		case opp > hero:
			return loss
		case opp == hero:
			result = tie
		}
	}
	return result
}
