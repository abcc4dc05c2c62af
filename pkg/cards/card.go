package cards

import (
	"fmt"
	"strings"
)

// Rank represents a card rank (2-A)
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a deck
const NumRanks = 13

// Value returns the numeric strength of the rank (2 for Two through 14 for Ace)
func (r Rank) Value() int {
	return int(r) + 2
}

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of distinct suits in a deck
const NumSuits = 4

// Card represents a single playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Index returns a stable position for the card in a 52-card deck (0-51)
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank)
}

// CardFromIndex is the inverse of Card.Index
func CardFromIndex(i int) Card {
	return Card{Rank: Rank(i % NumRanks), Suit: Suit(i / NumRanks)}
}

// ParseCard parses a card from string notation (e.g., "As", "Kh", "10d", "Td")
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("invalid card string: %q (must be rank followed by suit)", s)
	}

	rank, err := parseRankToken(s[:len(s)-1])
	if err != nil {
		return Card{}, err
	}

	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard is like ParseCard but panics on error
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseRankToken converts a rank token ("2".."10", "T", "J", "Q", "K", "A") to a Rank
func parseRankToken(tok string) (Rank, error) {
	if tok == "10" {
		return Ten, nil
	}
	if len(tok) != 1 {
		return 0, fmt.Errorf("invalid rank: %q", tok)
	}
	return ParseRank(tok[0])
}

// ParseRank converts a single rank character to a Rank
func ParseRank(b byte) (Rank, error) {
	switch b {
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank: %c", b)
	}
}

// parseSuit converts a character to a Suit
func parseSuit(b byte) (Suit, error) {
	switch b {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit: %c", b)
	}
}

// String returns the card in standard notation (e.g., "As", "10h")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// String returns the rank token
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// String returns the suit as a single character
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// ParseCards parses multiple cards from a string. Cards may be concatenated
// ("AsKhQd", "10s10h") or separated by spaces or commas ("As Kh, Qd").
func ParseCards(s string) ([]Card, error) {
	cards := make([]Card, 0, len(s)/2)

	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', ',', '\t', '\n':
			i++
			continue
		}

		// A rank token is one character, or "10"
		width := 2
		if s[i] == '1' {
			width = 3
		}
		if i+width > len(s) {
			return nil, fmt.Errorf("error parsing card at position %d: truncated card %q", i, s[i:])
		}

		card, err := ParseCard(s[i : i+width])
		if err != nil {
			return nil, fmt.Errorf("error parsing card at position %d: %w", i, err)
		}
		cards = append(cards, card)
		i += width
	}

	return cards, nil
}

// MustParseCards is like ParseCards but panics on error
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards with single spaces
func FormatCards(cards []Card) string {
	var sb strings.Builder
	for i, c := range cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
