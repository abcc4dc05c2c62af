package cards

import (
	"math/rand/v2"
	"testing"

	"github.com/matryer/is"
	"github.com/paulhankin/poker"
)

// toReference converts a card to the independent evaluator's representation
func toReference(t testing.TB, c Card) poker.Card {
	t.Helper()

	var s poker.Suit
	switch c.Suit {
	case Spades:
		s = poker.Spade
	case Hearts:
		s = poker.Heart
	case Diamonds:
		s = poker.Diamond
	case Clubs:
		s = poker.Club
	}

	// Reference ranks run Ace=1 .. King=13
	r := poker.Rank(c.Rank.Value())
	if c.Rank == Ace {
		r = poker.Rank(1)
	}

	card, err := poker.MakeCard(s, r)
	if err != nil {
		t.Fatalf("MakeCard(%v) error = %v", c, err)
	}
	return card
}

func referenceScore(t testing.TB, hand []Card) int16 {
	t.Helper()
	var seven [7]poker.Card
	for i, c := range hand {
		seven[i] = toReference(t, c)
	}
	return poker.Eval7(&seven)
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// TestCompareAgreesWithReference deals random pairs of 7-card hands and
// checks our ordering against an independent evaluator.
func TestCompareAgreesWithReference(t *testing.T) {
	is := is.New(t)
	rng := rand.New(rand.NewPCG(7, 11))
	deck := FullDeck()

	for i := 0; i < 5000; i++ {
		rng.Shuffle(len(deck), func(a, b int) { deck[a], deck[b] = deck[b], deck[a] })
		// Shared board, different hole cards, as in a real showdown
		a := []Card{deck[0], deck[1], deck[4], deck[5], deck[6], deck[7], deck[8]}
		b := []Card{deck[2], deck[3], deck[4], deck[5], deck[6], deck[7], deck[8]}

		ha, err := EvaluateBest(a)
		is.NoErr(err)
		hb, err := EvaluateBest(b)
		is.NoErr(err)

		want := sign(int(referenceScore(t, a)) - int(referenceScore(t, b)))
		if got := Compare(ha, hb); got != want {
			t.Fatalf("Compare(%v, %v) = %d, reference says %d", ha, hb, got, want)
		}
	}
}
