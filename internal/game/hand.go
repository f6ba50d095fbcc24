package game

import (
	"fmt"
	"strings"
)

// Hand holds the cards dealt to one party. Cards are only appended
// during a round; the Game resets the hand when a new round starts.
type Hand struct {
	cards []Card
}

// Add appends a card to the hand
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) reset() {
	h.cards = h.cards[:0]
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.cards)
}

// Total computes the blackjack total of the hand. Aces count 11 until
// the total would bust, then count 1, one ace at a time. Recomputed on
// every call from the cards alone.
func (h *Hand) Total() int {
	total := 0
	aces := 0

	for _, c := range h.cards {
		total += c.Value()
		if c.Rank == Ace {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// Busted reports whether the hand total exceeds 21 even with every ace
// counted low.
func (h *Hand) Busted() bool {
	return h.Total() > 21
}

// Render produces the display form of the hand, e.g.
// "A♥, Hidden (Total: 21)". With hideHole set and at least two cards
// dealt, the second card is masked; the total still covers the real
// cards, matching how the table shows the dealer mid-round.
func (h *Hand) Render(hideHole bool) string {
	labels := make([]string, len(h.cards))
	for i, c := range h.cards {
		labels[i] = c.String()
	}
	if hideHole && len(labels) > 1 {
		labels[1] = "Hidden"
	}
	return fmt.Sprintf("%s (Total: %d)", strings.Join(labels, ", "), h.Total())
}
