package notation

import (
	"testing"

	"github.com/matryer/is"

	"github.com/behrlich/poker-equity/pkg/cards"
)

func TestParseRange_Counts(t *testing.T) {
	tests := []struct {
		input     string
		wantCount int
	}{
		// Pairs
		{"AA", 6},
		{"22", 6},
		{"KK-JJ", 18}, // KK(6) + QQ(6) + JJ(6)
		{"JJ-KK", 18}, // either order
		{"QQ-99", 24},
		{"TT+", 30}, // TT, JJ, QQ, KK, AA
		{"AA+", 6},

		// Suited and offsuit
		{"AKs", 4},
		{"T9s", 4},
		{"AKo", 12},
		{"AK", 16},
		{"KA", 16},
		{"AKs-ATs", 16}, // AKs, AQs, AJs, ATs
		{"KQo-KJo", 24},
		{"ATs+", 16}, // ATs, AJs, AQs, AKs
		{"ATo+", 48},
		{"AT+", 64},
		{"32s+", 4},

		// Explicit hole cards
		{"AsKh", 1},
		{"10s10h", 1},

		// Lists
		{"AA,KK,AKs", 16},
		{"AA, KK , QQ", 18},
		{"AA,AsAh", 6}, // explicit combo already in AA
		{"AK,AKs", 16}, // suited combos counted once
		{"??", 1326},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			if err != nil {
				t.Fatalf("ParseRange(%q) error = %v", tt.input, err)
			}
			if r.Len() != tt.wantCount {
				t.Errorf("ParseRange(%q) returned %d combos, want %d", tt.input, r.Len(), tt.wantCount)
			}
		})
	}
}

func TestParseRange_Pairs(t *testing.T) {
	is := is.New(t)

	r, err := ParseRange("KK-JJ")
	is.NoErr(err)
	for _, combo := range r.Combos() {
		is.Equal(combo.Card1.Rank, combo.Card2.Rank)
		is.True(combo.Card1.Suit != combo.Card2.Suit)
		is.True(combo.Card1.Rank >= cards.Jack && combo.Card1.Rank <= cards.King)
	}
}

func TestParseRange_Suitedness(t *testing.T) {
	is := is.New(t)

	suited, err := ParseRange("AKs")
	is.NoErr(err)
	for _, combo := range suited.Combos() {
		is.Equal(combo.Card1.Suit, combo.Card2.Suit)
		is.Equal(combo.Card1.Rank, cards.Ace)
		is.Equal(combo.Card2.Rank, cards.King)
	}

	offsuit, err := ParseRange("KAo") // lower rank first is normalized
	is.NoErr(err)
	for _, combo := range offsuit.Combos() {
		is.True(combo.Card1.Suit != combo.Card2.Suit)
		is.Equal(combo.Card1.Rank, cards.Ace)
	}
}

func TestParseRange_PlusClimbsKicker(t *testing.T) {
	is := is.New(t)

	r, err := ParseRange("ATs+")
	is.NoErr(err)

	kickers := map[cards.Rank]int{}
	for _, combo := range r.Combos() {
		is.Equal(combo.Card1.Rank, cards.Ace)
		kickers[combo.Card2.Rank]++
	}
	is.Equal(kickers, map[cards.Rank]int{
		cards.Ten:   4,
		cards.Jack:  4,
		cards.Queen: 4,
		cards.King:  4,
	})
}

func TestParseRange_ExplicitCombo(t *testing.T) {
	is := is.New(t)

	r, err := ParseRange("10s10h")
	is.NoErr(err)
	is.True(r.IsExact())

	combo, ok := r.Hand()
	is.True(ok)
	is.Equal(combo.Card1, cards.MustParseCard("Ts"))
	is.Equal(combo.Card2, cards.MustParseCard("Th"))
}

func TestParseRange_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Only commas", ", ,"},
		{"Bad rank", "AX"},
		{"Bad indicator", "AKx"},
		{"Pair with indicator", "AAs"},
		{"Too long", "AKQs"},
		{"Mismatched dash", "AKs-AQo"},
		{"Dash across first ranks", "AKs-KQs"},
		{"Three-way dash", "AA-KK-QQ"},
		{"Single card", "As"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRange(tt.input); err == nil {
				t.Errorf("ParseRange(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestUniformCollapsesDuplicates(t *testing.T) {
	is := is.New(t)

	as, kh := cards.MustParseCard("As"), cards.MustParseCard("Kh")
	qd := cards.MustParseCard("Qd")

	r := Uniform(NewCombo(as, kh), NewCombo(kh, as), NewCombo(as, qd))
	is.Equal(r.Len(), 2)
	is.True(!r.IsExact())

	_, ok := r.Hand()
	is.True(!ok)
}

func TestExact(t *testing.T) {
	is := is.New(t)

	combo, err := ParseCombo("AhKh")
	is.NoErr(err)

	r := Exact(combo)
	is.Equal(r.Len(), 1)
	is.True(r.IsExact())

	got, ok := r.Hand()
	is.True(ok)
	is.Equal(got, combo)
	is.Equal(r.String(), "AhKh")
}

func TestCombosIsACopy(t *testing.T) {
	is := is.New(t)

	r, err := ParseRange("AA")
	is.NoErr(err)

	combos := r.Combos()
	combos[0] = Combo{}
	is.True(r.Combos()[0] != Combo{})
}

func TestAnyTwo(t *testing.T) {
	is := is.New(t)

	r := AnyTwo()
	is.Equal(r.Len(), 1326)

	seen := map[cards.CardSet]bool{}
	for _, combo := range r.Combos() {
		is.True(!combo.Paired())
		seen[combo.Set()] = true
	}
	is.Equal(len(seen), 1326)
}

func TestParseCombo(t *testing.T) {
	is := is.New(t)

	c, err := ParseCombo("Ah Ah")
	is.NoErr(err) // legality is checked by the calculator
	is.True(c.Paired())

	_, err = ParseCombo("AhKhQh")
	is.True(err != nil)
}
