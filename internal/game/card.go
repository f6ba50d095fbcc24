package game

import "fmt"

// Suit identifies one of the four french suits
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitSymbols = [4]string{"♥", "♦", "♣", "♠"}
var suitNames = [4]string{"Hearts", "Diamonds", "Clubs", "Spades"}

// Symbol returns the display glyph for the suit
func (s Suit) Symbol() string { return suitSymbols[s] }

// Red reports whether the suit is conventionally printed in red
func (s Suit) Red() bool { return s == Hearts || s == Diamonds }

func (s Suit) String() string { return suitNames[s] }

// Rank identifies a card rank. The zero value is Two so that iterating
// Two..Ace covers exactly the thirteen ranks of a standard deck.
type Rank int

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

var rankLabels = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

func (r Rank) String() string { return rankLabels[r] }

// Value returns the blackjack point value of the rank. Aces count 11
// here; the hand total downgrades them to 1 as needed.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r) + 2
	}
}

// Card is an immutable (suit, rank) pair. Cards are compared by value
// and copied freely; there is no card identity beyond equality.
type Card struct {
	Suit Suit
	Rank Rank
}

// Value returns the blackjack point value of the card
func (c Card) Value() int { return c.Rank.Value() }

// String renders the card as rank followed by suit glyph, e.g. "A♥"
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit.Symbol())
}
