package notation

import (
	"fmt"
	"strings"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// Street represents how much of the board has been dealt
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the street name
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// GetStreet determines the street based on board cards.
// Partial flops (1 or 2 cards) still count as preflop.
func GetStreet(boardSize int) Street {
	switch boardSize {
	case 3:
		return Flop
	case 4:
		return Turn
	case 5:
		return River
	default:
		return Preflop
	}
}

// Scenario is a parsed equity question: the hero's hole cards, each
// opponent's range and the known community cards.
type Scenario struct {
	// Hero's hole cards, as written (validated by the equity calculator)
	Hero []cards.Card

	// One range per opponent
	Opponents []Range

	// Community cards (0-5)
	Board []cards.Card
}

// Street returns the street implied by the board
func (s Scenario) Street() Street {
	return GetStreet(len(s.Board))
}

// String renders the scenario back in scenario notation
func (s Scenario) String() string {
	opps := make([]string, len(s.Opponents))
	for i, r := range s.Opponents {
		opps[i] = r.String()
	}
	board := "-"
	if len(s.Board) > 0 {
		board = strings.ReplaceAll(cards.FormatCards(s.Board), " ", "")
	}
	return fmt.Sprintf("%s|%s|%s",
		strings.ReplaceAll(cards.FormatCards(s.Hero), " ", ""),
		strings.Join(opps, "/"),
		board,
	)
}
