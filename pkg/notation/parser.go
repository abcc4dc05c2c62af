package notation

import (
	"fmt"
	"strings"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// ParseScenario parses a scenario string into a Scenario
// Format: <hero>|<opponent>/<opponent>/...|<board>
// Example: "AsAh|KsKh|-"
// Example with ranges: "AsKs|QQ+,AKs/??|Ah5h2c"
// The board section may be empty, "-" or left out entirely.
func ParseScenario(s string) (Scenario, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Scenario{}, fmt.Errorf("empty scenario")
	}

	parts := strings.Split(s, "|")
	if len(parts) < 2 || len(parts) > 3 {
		return Scenario{}, fmt.Errorf("invalid scenario format: expected 2 or 3 parts separated by |, got %d", len(parts))
	}

	hero, err := parseHero(parts[0])
	if err != nil {
		return Scenario{}, fmt.Errorf("error parsing hero: %w", err)
	}

	opponents, err := parseOpponents(parts[1])
	if err != nil {
		return Scenario{}, fmt.Errorf("error parsing opponents: %w", err)
	}

	var board []cards.Card
	if len(parts) == 3 {
		board, err = ParseBoard(parts[2])
		if err != nil {
			return Scenario{}, fmt.Errorf("error parsing board: %w", err)
		}
	}

	return Scenario{
		Hero:      hero,
		Opponents: opponents,
		Board:     board,
	}, nil
}

// parseHero parses the hero's hole cards. The card count is left for the
// calculator to validate so that errors are reported consistently.
func parseHero(heroStr string) ([]cards.Card, error) {
	heroStr = strings.TrimSpace(heroStr)
	if heroStr == "" {
		return nil, fmt.Errorf("empty hero hand")
	}
	return cards.ParseCards(heroStr)
}

// parseOpponents parses the opponents section: "RANGE/RANGE/..."
func parseOpponents(oppStr string) ([]Range, error) {
	oppStr = strings.TrimSpace(oppStr)
	if oppStr == "" {
		return nil, fmt.Errorf("no opponents")
	}

	oppParts := strings.Split(oppStr, "/")
	ranges := make([]Range, 0, len(oppParts))

	for i, rangeStr := range oppParts {
		r, err := ParseRange(rangeStr)
		if err != nil {
			return nil, fmt.Errorf("opponent %d: %w", i+1, err)
		}
		ranges = append(ranges, r)
	}

	return ranges, nil
}

// ParseBoard parses board string: "Th9h2c" (flop), "Th9h2c/Js" (turn), "Th9h2c/Js/3d" (river)
// Empty string or "-" for preflop
func ParseBoard(boardStr string) ([]cards.Card, error) {
	boardStr = strings.TrimSpace(boardStr)

	if boardStr == "" || boardStr == "-" {
		return nil, nil // Preflop
	}

	// Street separators are cosmetic
	boardStr = strings.ReplaceAll(boardStr, "/", "")

	board, err := cards.ParseCards(boardStr)
	if err != nil {
		return nil, err
	}
	if len(board) > 5 {
		return nil, fmt.Errorf("invalid board %q (at most 5 cards, got %d)", boardStr, len(board))
	}

	return board, nil
}
