package game

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
)

var (
	// ErrInvalidBet is returned by StartRound for a non-positive bet.
	ErrInvalidBet = errors.New("bet must be positive")
	// ErrRoundInProgress is returned by StartRound while a round is live.
	ErrRoundInProgress = errors.New("round already in progress")
	// ErrNoActiveRound is returned by Hit and Stand when no round is live.
	ErrNoActiveRound = errors.New("no round in progress")
)

// Outcome classifies how a settled round ended for the player.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomePush Outcome = "push"
	OutcomeBust Outcome = "bust"
)

// RoundRecord captures one settled round for the session summary.
type RoundRecord struct {
	ID          string
	Bet         int
	PlayerTotal int
	DealerTotal int
	Outcome     Outcome
}

// Game is the round engine: one deck, the two hands, the bankroll and
// the round lifecycle. It is the sole owner of its deck and hands; the
// UI drives it through StartRound/Hit/Stand and polls the read
// accessors every frame. Single-threaded by design.
type Game struct {
	deck   *Deck
	player Hand
	dealer Hand

	money int
	bet   int

	wins   int
	losses int

	started   bool
	roundOver bool

	history []RoundRecord
}

// New creates a game with a freshly shuffled deck and the given
// bankroll. The deck lives for the whole game and is not replenished
// between rounds. rng may be nil for a time-seeded shuffle.
func New(startingMoney int, rng *rand.Rand) *Game {
	return &Game{
		deck:  NewDeck(rng),
		money: startingMoney,
	}
}

// StartRound begins a new round with the given bet: both hands are
// reset and each party receives two cards, dealt alternately starting
// with the player. A bet larger than the bankroll is accepted; the
// ledger simply goes negative if it is lost.
func (g *Game) StartRound(bet int) error {
	if bet <= 0 {
		return ErrInvalidBet
	}
	if g.started && !g.roundOver {
		return ErrRoundInProgress
	}

	g.bet = bet
	g.player.reset()
	g.dealer.reset()
	g.roundOver = false
	g.started = true

	for i := 0; i < 2; i++ {
		if err := g.deal(&g.player); err != nil {
			return err
		}
		if err := g.deal(&g.dealer); err != nil {
			return err
		}
	}
	return nil
}

// Hit draws one card into the player's hand. A bust settles the round
// immediately: the bet is debited and the loss counted.
func (g *Game) Hit() error {
	if !g.started || g.roundOver {
		return ErrNoActiveRound
	}

	if err := g.deal(&g.player); err != nil {
		return err
	}

	if g.player.Busted() {
		g.losses++
		g.money -= g.bet
		g.settle(OutcomeBust)
	}
	return nil
}

// Stand ends the player's turn. The dealer draws until reaching 17,
// then the totals are compared: the player wins on a dealer bust or a
// higher total, loses on a lower total, and pushes on a tie. An
// opening two-card 21 gets no special payout; it settles through the
// same comparison as any other total.
func (g *Game) Stand() error {
	if !g.started || g.roundOver {
		return ErrNoActiveRound
	}

	for g.dealer.Total() < 17 {
		if err := g.deal(&g.dealer); err != nil {
			return err
		}
	}

	playerTotal := g.player.Total()
	dealerTotal := g.dealer.Total()

	switch {
	case dealerTotal > 21 || playerTotal > dealerTotal:
		g.wins++
		g.money += g.bet
		g.settle(OutcomeWin)
	case playerTotal < dealerTotal:
		g.losses++
		g.money -= g.bet
		g.settle(OutcomeLoss)
	default:
		g.settle(OutcomePush)
	}
	return nil
}

func (g *Game) deal(h *Hand) error {
	card, err := g.deck.Draw()
	if err != nil {
		return err
	}
	h.Add(card)
	return nil
}

func (g *Game) settle(outcome Outcome) {
	g.roundOver = true
	g.history = append(g.history, RoundRecord{
		ID:          uuid.New().String(),
		Bet:         g.bet,
		PlayerTotal: g.player.Total(),
		DealerTotal: g.dealer.Total(),
		Outcome:     outcome,
	})
}

// RoundOver reports whether the current round has settled. It is also
// true before the first round starts, since no round is live then.
func (g *Game) RoundOver() bool { return !g.started || g.roundOver }

// PlayerHand returns the player's hand
func (g *Game) PlayerHand() *Hand { return &g.player }

// DealerHand returns the dealer's hand
func (g *Game) DealerHand() *Hand { return &g.dealer }

// Money returns the current bankroll
func (g *Game) Money() int { return g.money }

// Bet returns the bet of the current or most recent round
func (g *Game) Bet() int { return g.bet }

// Wins returns the number of rounds won this session
func (g *Game) Wins() int { return g.wins }

// Losses returns the number of rounds lost this session
func (g *Game) Losses() int { return g.losses }

// Remaining returns the number of undealt cards left in the deck
func (g *Game) Remaining() int { return g.deck.Remaining() }

// History returns the settled rounds of this session in order
func (g *Game) History() []RoundRecord {
	out := make([]RoundRecord, len(g.history))
	copy(out, g.history)
	return out
}
