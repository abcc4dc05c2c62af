package notation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/behrlich/poker-equity/pkg/cards"
)

// Combo represents a specific 2-card combination (hole cards)
type Combo struct {
	Card1 cards.Card
	Card2 cards.Card
}

// NewCombo creates a combo from two cards
func NewCombo(c1, c2 cards.Card) Combo {
	return Combo{Card1: c1, Card2: c2}
}

// ParseCombo parses explicit hole cards (e.g., "AsKh", "10s10h")
func ParseCombo(s string) (Combo, error) {
	cs, err := cards.ParseCards(s)
	if err != nil {
		return Combo{}, err
	}
	if len(cs) != 2 {
		return Combo{}, fmt.Errorf("invalid hole cards %q: want 2 cards, got %d", s, len(cs))
	}
	return Combo{Card1: cs[0], Card2: cs[1]}, nil
}

// String returns the combo in standard notation (e.g., "AsKh")
func (c Combo) String() string {
	return c.Card1.String() + c.Card2.String()
}

// Cards returns both hole cards
func (c Combo) Cards() [2]cards.Card {
	return [2]cards.Card{c.Card1, c.Card2}
}

// Set returns the combo as a card set
func (c Combo) Set() cards.CardSet {
	return cards.NewCardSet(c.Card1, c.Card2)
}

// Paired reports whether the combo holds the same card twice
func (c Combo) Paired() bool {
	return c.Card1 == c.Card2
}

// Range is the set of starting hands a player may hold. Every combo is
// equally likely; a range of one combo is a known hand.
type Range struct {
	combos []Combo
}

// Exact returns the range holding a single known hand
func Exact(c Combo) Range {
	return Range{combos: []Combo{c}}
}

// Uniform returns a range of equally likely combos. Combos holding the same
// two cards in either order collapse to one.
func Uniform(combos ...Combo) Range {
	return Range{combos: lo.UniqBy(combos, func(c Combo) cards.CardSet {
		return c.Set()
	})}
}

// AnyTwo returns the range of all 1326 starting hands
func AnyTwo() Range {
	deck := cards.FullDeck()
	combos := make([]Combo, 0, len(deck)*(len(deck)-1)/2)
	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			combos = append(combos, Combo{Card1: deck[i], Card2: deck[j]})
		}
	}
	return Range{combos: combos}
}

// Len returns the number of candidate hands
func (r Range) Len() int {
	return len(r.combos)
}

// IsExact reports whether the range is a single known hand
func (r Range) IsExact() bool {
	return len(r.combos) == 1
}

// Hand returns the known hand of an exact range
func (r Range) Hand() (Combo, bool) {
	if !r.IsExact() {
		return Combo{}, false
	}
	return r.combos[0], true
}

// Combos returns a copy of the candidate hands
func (r Range) Combos() []Combo {
	return append([]Combo(nil), r.combos...)
}

// String lists the combos, comma separated
func (r Range) String() string {
	return strings.Join(lo.Map(r.combos, func(c Combo, _ int) string {
		return c.String()
	}), ",")
}

// ParseRange parses a range string and returns the range it denotes.
// Examples:
//   - "AA" → 6 combos (AsAh, AsAd, AsAc, AhAd, AhAc, AdAc)
//   - "AKs" → 4 combos (AsKs, AhKh, AdKd, AcKc)
//   - "AKo" → 12 combos (all offsuit combinations)
//   - "AK" → 16 combos (suited and offsuit)
//   - "KK-JJ" → 18 combos (KK, QQ, JJ)
//   - "TT+" → 30 combos (TT through AA)
//   - "ATs+" → 16 combos (ATs, AJs, AQs, AKs)
//   - "AsKh" → 1 combo (explicit hole cards)
//   - "??" → all 1326 combos
//   - "AA,KK,AKs" → 6+6+4 = 16 combos
func ParseRange(rangeStr string) (Range, error) {
	combos, err := ParseCombos(rangeStr)
	if err != nil {
		return Range{}, err
	}
	return Uniform(combos...), nil
}

// ParseCombos parses a range string into its combos, in notation order
func ParseCombos(rangeStr string) ([]Combo, error) {
	rangeStr = strings.TrimSpace(rangeStr)
	if rangeStr == "" {
		return nil, fmt.Errorf("empty range string")
	}
	if rangeStr == "??" {
		return AnyTwo().combos, nil
	}

	// Split by comma to get individual range components
	parts := strings.Split(rangeStr, ",")

	var allCombos []Combo
	for _, part := range parts {
		part = strings.Join(strings.Fields(part), "")
		if part == "" {
			continue
		}

		// Ten may be written as "10" or "T"
		normalized := strings.ReplaceAll(part, "10", "T")

		var (
			combos []Combo
			err    error
		)
		switch {
		case isSpecificCards(normalized):
			var combo Combo
			combo, err = ParseCombo(normalized)
			combos = []Combo{combo}
		case strings.HasSuffix(normalized, "+"):
			combos, err = parsePlus(strings.TrimSuffix(normalized, "+"))
		case strings.Contains(normalized, "-"):
			combos, err = parseRangeWithDash(normalized)
		default:
			combos, err = parseSingleHand(normalized)
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing range %q: %w", part, err)
		}
		allCombos = append(allCombos, combos...)
	}

	if len(allCombos) == 0 {
		return nil, fmt.Errorf("range %q has no hands", rangeStr)
	}

	return allCombos, nil
}

// suitedness selects which suit combinations a non-pair hand expands to
type suitedness uint8

const (
	anySuits suitedness = iota
	suitedOnly
	offsuitOnly
)

// parseSingleHand parses a single hand notation (e.g., "AA", "AKs", "AKo", "AK")
func parseSingleHand(hand string) ([]Combo, error) {
	rank1, rank2, suits, err := parseHandComponents(hand)
	if err != nil {
		return nil, err
	}
	return generateCombos(rank1, rank2, suits), nil
}

// parsePlus parses the part of a "+" range before the plus sign.
// Pairs climb to aces ("TT+"); other hands climb the second rank up to one
// below the first ("ATs+" → ATs, AJs, AQs, AKs).
func parsePlus(base string) ([]Combo, error) {
	rank1, rank2, suits, err := parseHandComponents(base)
	if err != nil {
		return nil, err
	}

	var allCombos []Combo
	if rank1 == rank2 {
		for r := rank1; r <= cards.Ace; r++ {
			allCombos = append(allCombos, generateCombos(r, r, suits)...)
		}
		return allCombos, nil
	}

	for r := rank2; r < rank1; r++ {
		allCombos = append(allCombos, generateCombos(rank1, r, suits)...)
	}
	return allCombos, nil
}

// parseRangeWithDash parses a range with a dash (e.g., "KK-JJ", "AKs-ATs")
func parseRangeWithDash(rangeStr string) ([]Combo, error) {
	parts := strings.Split(rangeStr, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range format: %q (expected format: AA-KK)", rangeStr)
	}

	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])

	// Parse start and end hands
	startRank1, startRank2, startSuits, err := parseHandComponents(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start hand %q: %w", start, err)
	}

	endRank1, endRank2, endSuits, err := parseHandComponents(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end hand %q: %w", end, err)
	}

	// Validate that suited/offsuit matches
	if startSuits != endSuits {
		return nil, fmt.Errorf("mismatched suited/offsuit in range %q", rangeStr)
	}

	var allCombos []Combo

	// Handle pair ranges (e.g., "KK-JJ")
	if startRank1 == startRank2 && endRank1 == endRank2 {
		hi, lo := startRank1, endRank1
		if lo > hi {
			hi, lo = lo, hi
		}
		for r := int(hi); r >= int(lo); r-- {
			rank := cards.Rank(r)
			allCombos = append(allCombos, generateCombos(rank, rank, startSuits)...)
		}
		return allCombos, nil
	}

	// Handle non-pair ranges (e.g., "AKs-ATs", "KQo-KJo")
	// First rank must be the same for both
	if startRank1 != endRank1 {
		return nil, fmt.Errorf("invalid range %q (first rank must match)", rangeStr)
	}

	hi, lo := startRank2, endRank2
	if lo > hi {
		hi, lo = lo, hi
	}
	for r := int(hi); r >= int(lo); r-- {
		rank2 := cards.Rank(r)
		allCombos = append(allCombos, generateCombos(startRank1, rank2, startSuits)...)
	}

	return allCombos, nil
}

// parseHandComponents parses hand notation and returns (rank1, rank2, suitedness, error).
// The higher rank is always returned first.
func parseHandComponents(hand string) (cards.Rank, cards.Rank, suitedness, error) {
	hand = strings.TrimSpace(hand)

	if len(hand) < 2 || len(hand) > 3 {
		return 0, 0, anySuits, fmt.Errorf("invalid hand notation: %q", hand)
	}

	rank1, err := cards.ParseRank(hand[0])
	if err != nil {
		return 0, 0, anySuits, err
	}

	rank2, err := cards.ParseRank(hand[1])
	if err != nil {
		return 0, 0, anySuits, err
	}

	if rank2 > rank1 {
		rank1, rank2 = rank2, rank1
	}

	suits := anySuits
	if len(hand) == 3 {
		// Pairs cannot have suited/offsuit indicator
		if rank1 == rank2 {
			return 0, 0, anySuits, fmt.Errorf("pair %q cannot have suited/offsuit indicator", hand)
		}

		switch hand[2] {
		case 's', 'S':
			suits = suitedOnly
		case 'o', 'O':
			suits = offsuitOnly
		default:
			return 0, 0, anySuits, fmt.Errorf("invalid suited/offsuit indicator: %c (expected 's' or 'o')", hand[2])
		}
	}

	return rank1, rank2, suits, nil
}

// isSpecificCards checks if a string represents specific hole cards (e.g., "AsKd")
func isSpecificCards(s string) bool {
	if len(s) != 4 {
		return false
	}
	// Check if it looks like two cards: rank+suit+rank+suit
	ranks := "AKQJT98765432akqjt"
	suits := "shdcSHDC"

	return strings.ContainsRune(ranks, rune(s[0])) &&
		strings.ContainsRune(suits, rune(s[1])) &&
		strings.ContainsRune(ranks, rune(s[2])) &&
		strings.ContainsRune(suits, rune(s[3]))
}

// generateCombos generates all possible card combinations for a given hand
func generateCombos(rank1, rank2 cards.Rank, suits suitedness) []Combo {
	var combos []Combo

	all := []cards.Suit{cards.Spades, cards.Hearts, cards.Diamonds, cards.Clubs}

	if rank1 == rank2 {
		// Pair: generate all 6 combinations
		for i := 0; i < len(all); i++ {
			for j := i + 1; j < len(all); j++ {
				combos = append(combos, Combo{
					Card1: cards.NewCard(rank1, all[i]),
					Card2: cards.NewCard(rank2, all[j]),
				})
			}
		}
		return combos
	}

	for _, suit1 := range all {
		for _, suit2 := range all {
			suited := suit1 == suit2
			if (suited && suits == offsuitOnly) || (!suited && suits == suitedOnly) {
				continue
			}
			combos = append(combos, Combo{
				Card1: cards.NewCard(rank1, suit1),
				Card2: cards.NewCard(rank2, suit2),
			})
		}
	}

	return combos
}
