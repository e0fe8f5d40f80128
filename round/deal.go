package round

import "github.com/adaolisa/uno/deck"

// Opts configures a fresh round. CardsPerPlayer defaults to 7 and Shuffler
// to the standard pseudo-random shuffle when left unset.
type Opts struct {
	Players        []string
	Dealer         int
	CardsPerPlayer int
	Shuffler       deck.Shuffler
}

// NewRound deals a fresh round: the full deck is shuffled, hands are dealt
// round-robin starting from player 0, and the next card is flipped as the
// starting discard. A wild flip voids the whole deal and redeals from
// scratch; the opening card's effect is resolved relative to the dealer
// before play begins.
func NewRound(opts Opts) (*Round, error) {
	if len(opts.Players) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(opts.Players) > maxPlayers {
		return nil, ErrTooManyPlayers
	}
	if opts.Dealer < 0 || opts.Dealer >= len(opts.Players) {
		return nil, ErrDealerOutOfBounds
	}

	cardsPerPlayer := opts.CardsPerPlayer
	if cardsPerPlayer == 0 {
		cardsPerPlayer = defaultCardsPerPlayer
	}
	if cardsPerPlayer < 0 {
		return nil, ErrNonPositiveCardsPerPlayer
	}
	if len(opts.Players)*cardsPerPlayer+1 > deck.NewFullDeck().Size() {
		return nil, ErrNotEnoughCards
	}

	shuffler := opts.Shuffler
	if shuffler == nil {
		shuffler = deck.StandardShuffler
	}

	players := append([]string(nil), opts.Players...)

	for attempt := 0; attempt < maxDealAttempts; attempt++ {
		pile := deck.NewFullDeck()
		pile.Shuffle(shuffler)

		hands := make([]deck.Pile, len(players))
		for i := 0; i < cardsPerPlayer; i++ {
			for p := range players {
				hands[p] = append(hands[p], pile.Deal(1)...)
			}
		}

		first := pile.Deal(1)[0]
		if first.IsWild() {
			// wild cards may never start a round
			continue
		}

		r := &Round{
			players:     players,
			dealer:      opts.Dealer,
			hands:       hands,
			drawPile:    pile,
			discardPile: deck.Pile{first},
			direction:   clockwise,
			current:     opts.Dealer,
			saidUno:     make([]bool, len(players)),
			shuffler:    shuffler,
		}
		r.resolveOpeningCard(first)
		return r, nil
	}
	return nil, ErrDealRetriesExceeded
}

// resolveOpeningCard applies the flipped starting card's effect relative to
// the dealer: the first player is the dealer shifted by the card's own
// turn-advance rule, and an opening DRAW penalty lands before play begins.
func (r *Round) resolveOpeningCard(card deck.Card) {
	steps := 1
	switch card.Type {
	case deck.Skip:
		steps = 2
	case deck.Reverse:
		r.direction = -r.direction
		if len(r.players) == 2 {
			steps = 2
		}
	case deck.Draw:
		r.penalize(r.playerAt(1), drawTwoPenalty)
		steps = 2
	}
	r.current = r.playerAt(steps)
}
