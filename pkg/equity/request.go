package equity

import (
	"fmt"
	"strings"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/notation"
)

// Method selects how equity is computed
type Method uint8

const (
	// Enumeration walks every legal deal exactly
	Enumeration Method = iota + 1
	// MonteCarlo samples random deals
	MonteCarlo
)

// String returns the method name accepted by ParseMethod
func (m Method) String() string {
	switch m {
	case Enumeration:
		return "enumeration"
	case MonteCarlo:
		return "montecarlo"
	default:
		return "unknown"
	}
}

// ParseMethod parses a method name ("enumeration", "exact", "montecarlo", "mc")
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enumeration", "enumerate", "exact", "enum":
		return Enumeration, nil
	case "montecarlo", "monte-carlo", "monte_carlo", "mc", "simulate":
		return MonteCarlo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Request is a single equity question
type Request struct {
	Hero       []cards.Card
	Opponents  []notation.Range
	Board      []cards.Card
	Method     Method
	Iterations int // Monte Carlo trials; ignored by enumeration
}

// NewRequest builds a request from a parsed scenario
func NewRequest(sc notation.Scenario, method Method, iterations int) Request {
	return Request{
		Hero:       sc.Hero,
		Opponents:  sc.Opponents,
		Board:      sc.Board,
		Method:     method,
		Iterations: iterations,
	}
}

// Validate checks the request, returning the first violated precondition.
// Every error wraps ErrInvalidInput.
func (r Request) Validate() error {
	if len(r.Hero) != 2 {
		return fmt.Errorf("%w: got %d", ErrWrongHoleCardCount, len(r.Hero))
	}
	if len(r.Board) > 5 {
		return fmt.Errorf("%w: got %d", ErrWrongCommunityCount, len(r.Board))
	}
	if len(r.Opponents) == 0 {
		return ErrNoOpponents
	}
	for i, opp := range r.Opponents {
		if opp.Len() == 0 {
			return fmt.Errorf("%w: opponent %d", ErrEmptyOpponentRange, i+1)
		}
	}
	if err := r.checkDuplicates(); err != nil {
		return err
	}
	if r.Method == MonteCarlo && r.Iterations < 1 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveIterations, r.Iterations)
	}

	available := cards.DeckSize - len(r.Hero) - len(r.Board)
	requested := 2*len(r.Opponents) + (5 - len(r.Board))
	if requested > available {
		return fmt.Errorf("%w: requested %d, available %d", ErrNoAvailableCards, requested, available)
	}

	if r.Method != Enumeration && r.Method != MonteCarlo {
		return fmt.Errorf("%w: %d", ErrUnknownMethod, r.Method)
	}
	return nil
}

// checkDuplicates rejects a card appearing twice among the hero, the board
// and the exact opponent hands, and any combo holding one card twice
func (r Request) checkDuplicates() error {
	var seen cards.CardSet
	add := func(c cards.Card) error {
		if seen.Has(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen = seen.Add(c)
		return nil
	}

	for _, c := range r.Hero {
		if err := add(c); err != nil {
			return err
		}
	}
	for _, c := range r.Board {
		if err := add(c); err != nil {
			return err
		}
	}
	for i, opp := range r.Opponents {
		for _, combo := range opp.Combos() {
			if combo.Paired() {
				return fmt.Errorf("%w: %s in opponent %d combo %s", ErrDuplicateCard, combo.Card1, i+1, combo)
			}
		}
		if hand, ok := opp.Hand(); ok {
			if err := add(hand.Card1); err != nil {
				return fmt.Errorf("opponent %d: %w", i+1, err)
			}
			if err := add(hand.Card2); err != nil {
				return fmt.Errorf("opponent %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// knownCards returns the hero and board as a set
func (r Request) knownCards() cards.CardSet {
	return cards.NewCardSet(r.Hero...).Add(r.Board...)
}
