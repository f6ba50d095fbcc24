package game

import (
	"errors"
	"math/rand"
	"time"
)

// ErrDeckExhausted is returned by Draw when no cards remain. A single
// round cannot come close to using 52 cards, so seeing this error means
// the deck outlived too many rounds or a caller broke an invariant.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is an ordered pile of cards. It only ever shrinks: cards leave
// via Draw and are never put back.
type Deck struct {
	cards []Card
}

// NewDeck builds a full 52-card deck, one of each suit and rank, and
// shuffles it with the given source. A nil rng falls back to a
// time-seeded source for normal play; tests inject a fixed seed.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cards := make([]Card, 0, 52)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}

	// Fisher-Yates shuffle
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return &Deck{cards: cards}
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
