package cards

import "math/bits"

// DeckSize is the number of cards in a standard deck
const DeckSize = NumRanks * NumSuits

// CardSet is an immutable set of cards backed by a 52-bit mask.
// The zero value is the empty set.
type CardSet uint64

// NewCardSet returns the set holding the given cards
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s |= 1 << uint(c.Index())
	}
	return s
}

// Add returns a copy of the set with the cards added
func (s CardSet) Add(cards ...Card) CardSet {
	return s | NewCardSet(cards...)
}

// Has reports whether the card is in the set
func (s CardSet) Has(c Card) bool {
	return s&(1<<uint(c.Index())) != 0
}

// Overlaps reports whether the two sets share a card
func (s CardSet) Overlaps(other CardSet) bool {
	return s&other != 0
}

// Union returns the cards in either set
func (s CardSet) Union(other CardSet) CardSet {
	return s | other
}

// Len returns the number of cards in the set
func (s CardSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Cards returns the members in deck order
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, CardFromIndex(bits.TrailingZeros64(m)))
	}
	return out
}

// Remaining returns every card of a full deck not present in used, in deck order
func Remaining(used CardSet) []Card {
	return AppendRemaining(make([]Card, 0, DeckSize-used.Len()), used)
}

// AppendRemaining appends the cards missing from used to dst and returns it.
// Callers that deal in a loop reuse dst to avoid allocating.
func AppendRemaining(dst []Card, used CardSet) []Card {
	for i := 0; i < DeckSize; i++ {
		if used&(1<<uint(i)) == 0 {
			dst = append(dst, CardFromIndex(i))
		}
	}
	return dst
}

// FullDeck returns all 52 cards in deck order
func FullDeck() []Card {
	return Remaining(0)
}
