package cards

import (
	"errors"
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

// HandRank represents the category (level) of a poker hand.
// The numeric value is the level's weight: HighCard is 1, RoyalFlush is 10.
type HandRank uint8

const (
	HighCard HandRank = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// ErrInsufficientCards is returned when fewer than five cards are evaluated
var ErrInsufficientCards = errors.New("insufficient cards")

// Weight returns the integer weight used to order levels
func (r HandRank) Weight() int {
	return int(r)
}

// Hand is the result of evaluating a set of cards: the level, the five
// cards that make it, and the ranks that break ties between hands of the
// same level, most significant first.
type Hand struct {
	Rank    HandRank
	Cards   [5]Card
	Kickers []Rank
}

// Compare returns -1 if a < b, 0 if equal, 1 if a > b.
// Levels are compared first, then kickers element by element.
func Compare(a, b Hand) int {
	if a.Rank != b.Rank {
		if a.Rank < b.Rank {
			return -1
		}
		return 1
	}

	n := min(len(a.Kickers), len(b.Kickers))
	for i := 0; i < n; i++ {
		if a.Kickers[i] != b.Kickers[i] {
			if a.Kickers[i] < b.Kickers[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}

// Compare returns -1 if h < other, 0 if equal, 1 if h > other
func (h Hand) Compare(other Hand) int {
	return Compare(h, other)
}

// String returns the level followed by the five cards, e.g. "Flush (Ah Jh 9h 4h 2h)"
func (h Hand) String() string {
	return fmt.Sprintf("%s (%s)", h.Rank, FormatCards(h.Cards[:]))
}

// subsetTables holds every 5-card index subset for the common input sizes
var subsetTables = [...][][]int{
	5: combin.Combinations(5, 5),
	6: combin.Combinations(6, 5),
	7: combin.Combinations(7, 5),
}

// fiveCardSubsets returns all C(n,5) index subsets of n cards
func fiveCardSubsets(n int) [][]int {
	if n < len(subsetTables) {
		return subsetTables[n]
	}
	return combin.Combinations(n, 5)
}

// EvaluateBest returns the best 5-card hand that can be made from cards.
// Every 5-card subset is ranked and the greatest by level and kickers wins.
func EvaluateBest(cards []Card) (Hand, error) {
	if len(cards) < 5 {
		return Hand{}, fmt.Errorf("%w: got %d, need at least 5", ErrInsufficientCards, len(cards))
	}

	var (
		five       [5]Card
		best       Strength
		bestSubset []int
	)
	for _, subset := range fiveCardSubsets(len(cards)) {
		for i, idx := range subset {
			five[i] = cards[idx]
		}
		rank, kickers, n := rank5(&five)
		if key := packKey(rank, &kickers, n); key > best {
			best = key
			bestSubset = subset
		}
	}

	for i, idx := range bestSubset {
		five[i] = cards[idx]
	}
	return Evaluate5(five), nil
}

// Evaluate5 evaluates exactly five cards
func Evaluate5(cards [5]Card) Hand {
	rank, kickers, n := rank5(&cards)
	return Hand{
		Rank:    rank,
		Cards:   cards,
		Kickers: append([]Rank(nil), kickers[:n]...),
	}
}

// Strength packs a level and up to five kickers into one integer whose
// ordering matches Compare. Equal strengths tie.
type Strength uint32

// Score returns the strength of the best 5-card hand in cards without
// building the Hand. Showdown loops use it in place of EvaluateBest.
func Score(cards []Card) (Strength, error) {
	if len(cards) < 5 {
		return 0, fmt.Errorf("%w: got %d, need at least 5", ErrInsufficientCards, len(cards))
	}

	var (
		five [5]Card
		best Strength
	)
	for _, subset := range fiveCardSubsets(len(cards)) {
		for i, idx := range subset {
			five[i] = cards[idx]
		}
		rank, kickers, n := rank5(&five)
		if key := packKey(rank, &kickers, n); key > best {
			best = key
		}
	}
	return best, nil
}

// Strength returns the packed value of an evaluated hand
func (h Hand) Strength() Strength {
	var kickers [5]Rank
	n := copy(kickers[:], h.Kickers)
	return packKey(h.Rank, &kickers, n)
}

// Level extracts the hand category from a strength
func (s Strength) Level() HandRank {
	return HandRank(s >> 20)
}

func packKey(rank HandRank, kickers *[5]Rank, n int) Strength {
	key := Strength(rank) << 20
	for i := 0; i < n; i++ {
		key |= Strength(kickers[i].Value()) << (16 - 4*uint(i))
	}
	return key
}

// wheelMask is A-2-3-4-5
const wheelMask = 1<<Ace | 1<<Two | 1<<Three | 1<<Four | 1<<Five

// rank5 classifies five cards, returning the level and its kickers
func rank5(cards *[5]Card) (HandRank, [5]Rank, int) {
	var counts [NumRanks]uint8
	var mask uint16

	isFlush := true
	suit := cards[0].Suit
	for _, c := range cards {
		counts[c.Rank]++
		mask |= 1 << c.Rank
		if c.Suit != suit {
			isFlush = false
		}
	}

	high, isStraight := straightHigh(mask)

	if isStraight && isFlush {
		if high == Ace {
			return RoyalFlush, [5]Rank{}, 0
		}
		return StraightFlush, [5]Rank{high}, 1
	}

	// Ranks ordered by count descending, then rank descending
	var kickers [5]Rank
	n := 0
	var pairs, trips, quads int
	for count := uint8(4); count >= 1; count-- {
		for r := int(Ace); r >= int(Two); r-- {
			if counts[r] != count {
				continue
			}
			kickers[n] = Rank(r)
			n++
			switch count {
			case 4:
				quads++
			case 3:
				trips++
			case 2:
				pairs++
			}
		}
	}

	switch {
	case quads == 1:
		return FourOfAKind, kickers, n
	case trips == 1 && pairs == 1:
		return FullHouse, kickers, n
	case isFlush:
		return Flush, kickers, n
	case isStraight:
		return Straight, [5]Rank{high}, 1
	case trips == 1:
		return ThreeOfAKind, kickers, n
	case pairs == 2:
		return TwoPair, kickers, n
	case pairs == 1:
		return OnePair, kickers, n
	default:
		return HighCard, kickers, n
	}
}

// straightHigh reports whether the rank mask is exactly five consecutive
// ranks and returns the straight's high card. The wheel is five-high.
func straightHigh(mask uint16) (Rank, bool) {
	if bits.OnesCount16(mask) != 5 {
		return 0, false
	}

	top := Rank(bits.Len16(mask) - 1)
	bottom := Rank(bits.TrailingZeros16(mask))
	if top-bottom == 4 {
		return top, true
	}

	if mask == wheelMask {
		return Five, true
	}

	return 0, false
}

// String returns a human-readable representation of the hand rank
func (r HandRank) String() string {
	switch r {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}
