package round

import (
	"errors"

	"github.com/adaolisa/uno/deck"
)

var (
	ErrRoundOver                 = errors.New("round is already over")
	ErrCardOutOfBounds           = errors.New("card index out of bounds")
	ErrPlayerOutOfBounds         = errors.New("player index out of bounds")
	ErrIllegalPlay               = errors.New("card is not playable on the current discard")
	ErrColorRequired             = errors.New("playing a wild card requires a color choice")
	ErrColorNotAllowed           = errors.New("a color choice is only valid for a wild card")
	ErrDrawPileExhausted         = errors.New("draw pile empty and discard pile has nothing left to reshuffle")
	ErrTooManyCardsForUno        = errors.New("cannot declare UNO with more than two cards in hand")
	ErrTooFewPlayers             = errors.New("minimum of 2 players required")
	ErrTooManyPlayers            = errors.New("maximum of 10 players allowed")
	ErrDealerOutOfBounds         = errors.New("dealer index out of bounds")
	ErrNonPositiveCardsPerPlayer = errors.New("cards per player must be positive")
	ErrNotEnoughCards            = errors.New("deck too small for requested deal")
	ErrDealRetriesExceeded       = errors.New("could not flip a non-wild starting card")
)

const (
	minPlayers            = 2
	maxPlayers            = 10
	defaultCardsPerPlayer = 7
	drawTwoPenalty        = 2
	drawFourPenalty       = 4
	unoCatchPenalty       = 4
	maxDealAttempts       = 50
)

const (
	clockwise        = 1
	counterclockwise = -1
)

// unoWindow marks the player who reached exactly one card without declaring
// and can still be caught.
type unoWindow struct {
	player int
}

// Round is the state machine for a single round. All mutation goes through
// its methods; the piles and hands are owned exclusively by the round.
type Round struct {
	players       []string
	dealer        int
	hands         []deck.Pile
	drawPile      deck.Pile
	discardPile   deck.Pile
	direction     int
	enforcedColor *deck.Color
	current       int // meaningful only while the round is active
	ended         bool
	winner        int
	score         int
	saidUno       []bool
	window        *unoWindow
	shuffler      deck.Shuffler
	endHandlers   []func(winner int)
}

// Play discards the card at cardIndex from the hand of the player in turn and
// resolves its effect. Wild variants require exactly one chosenColor; any
// other variant forbids one.
func (r *Round) Play(cardIndex int, chosenColor ...deck.Color) (deck.Card, error) {
	if r.ended {
		return deck.Card{}, ErrRoundOver
	}

	hand := r.hands[r.current]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return deck.Card{}, ErrCardOutOfBounds
	}

	card := hand[cardIndex]
	if !deck.CanPlay(card, r.top(), r.enforcedColor) {
		return deck.Card{}, ErrIllegalPlay
	}
	if card.IsWild() && len(chosenColor) == 0 {
		return deck.Card{}, ErrColorRequired
	}
	if !card.IsWild() && len(chosenColor) > 0 {
		return deck.Card{}, ErrColorNotAllowed
	}
	if len(chosenColor) > 1 {
		return deck.Card{}, ErrColorNotAllowed
	}

	r.hands[r.current] = append(hand[:cardIndex:cardIndex], hand[cardIndex+1:]...)
	r.discardPile = append(r.discardPile, card)

	if card.IsWild() {
		color := chosenColor[0]
		r.enforcedColor = &color
	} else {
		r.enforcedColor = nil
	}

	r.expireForeignWindow(r.current)

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
	case deck.WildDraw:
		r.penalize(r.playerAt(1), drawFourPenalty)
		steps = 2
	}

	r.refreshUnoState(r.current)

	if len(r.hands[r.current]) == 0 {
		r.end(r.current)
		return card, nil
	}

	r.current = r.playerAt(steps)
	return card, nil
}

// Draw moves one card from the draw pile into the hand of the player in turn,
// reshuffling the discard pile underneath its top card if the draw pile is
// empty. The turn advances only if the drawn card is not playable; a playable
// draw leaves the turn with the player for an immediate follow-up play.
func (r *Round) Draw() (deck.Card, error) {
	if r.ended {
		return deck.Card{}, ErrRoundOver
	}
	if err := r.replenishDrawPile(); err != nil {
		return deck.Card{}, err
	}

	card := r.drawPile.Deal(1)[0]
	r.hands[r.current] = append(r.hands[r.current], card)

	r.expireForeignWindow(r.current)
	r.refreshUnoState(r.current)

	if !deck.CanPlay(card, r.top(), r.enforcedColor) {
		r.current = r.playerAt(1)
	}
	return card, nil
}

// CanPlay reports whether the player in turn could legally play the card at
// cardIndex. Always false once the round has ended.
func (r *Round) CanPlay(cardIndex int) bool {
	if r.ended {
		return false
	}
	hand := r.hands[r.current]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return false
	}
	return deck.CanPlay(hand[cardIndex], r.top(), r.enforcedColor)
}

// CanPlayAny reports whether the player in turn holds any playable card
func (r *Round) CanPlayAny() bool {
	if r.ended {
		return false
	}
	for i := range r.hands[r.current] {
		if r.CanPlay(i) {
			return true
		}
	}
	return false
}

// SayUno declares UNO for the named player, closing any open accusation
// window on them. Allowed while the player holds at most two cards.
func (r *Round) SayUno(player int) error {
	if r.ended {
		return ErrRoundOver
	}
	if player < 0 || player >= len(r.players) {
		return ErrPlayerOutOfBounds
	}
	if len(r.hands[player]) > 2 {
		return ErrTooManyCardsForUno
	}

	r.saidUno[player] = true
	if r.window != nil && r.window.player == player {
		r.window = nil
	}
	return nil
}

// CatchUnoFailure accuses accused of failing to declare UNO. It reports true
// and deals the accused a 4-card penalty only if the accusation window is
// open on them, they have not declared, and they hold exactly one card.
// The accusation itself never closes someone else's window.
func (r *Round) CatchUnoFailure(accuser, accused int) (bool, error) {
	if accuser < 0 || accuser >= len(r.players) {
		return false, ErrPlayerOutOfBounds
	}
	if accused < 0 || accused >= len(r.players) {
		return false, ErrPlayerOutOfBounds
	}

	if r.window == nil || r.window.player != accused {
		return false, nil
	}
	if r.saidUno[accused] || len(r.hands[accused]) != 1 {
		return false, nil
	}

	r.window = nil
	r.penalize(accused, unoCatchPenalty)
	return true, nil
}

// HasEnded reports whether the round is over
func (r *Round) HasEnded() bool {
	return r.ended
}

// Winner returns the winning player's index once the round has ended
func (r *Round) Winner() (int, bool) {
	if !r.ended {
		return 0, false
	}
	return r.winner, true
}

// Score returns the winner's score: the sum of every other hand's points.
// Computed once at the moment the round ends.
func (r *Round) Score() (int, bool) {
	if !r.ended {
		return 0, false
	}
	return r.score, true
}

// OnEnd registers a one-shot handler invoked synchronously when the round
// ends. If the round has already ended the handler fires immediately.
func (r *Round) OnEnd(handler func(winner int)) {
	if handler == nil {
		return
	}
	if r.ended {
		handler(r.winner)
		return
	}
	r.endHandlers = append(r.endHandlers, handler)
}

// PlayerCount returns the number of players in the round
func (r *Round) PlayerCount() int {
	return len(r.players)
}

// Player returns the name of the player at index
func (r *Round) Player(index int) (string, error) {
	if index < 0 || index >= len(r.players) {
		return "", ErrPlayerOutOfBounds
	}
	return r.players[index], nil
}

// Dealer returns the dealer's index
func (r *Round) Dealer() int {
	return r.dealer
}

// PlayerInTurn returns the index of the player in turn while the round is
// active
func (r *Round) PlayerInTurn() (int, bool) {
	if r.ended {
		return 0, false
	}
	return r.current, true
}

// Hand returns a copy of the named player's hand
func (r *Round) Hand(player int) (deck.Pile, error) {
	if player < 0 || player >= len(r.players) {
		return nil, ErrPlayerOutOfBounds
	}
	return r.hands[player].Copy(), nil
}

// HandSize returns the number of cards the named player holds
func (r *Round) HandSize(player int) (int, error) {
	if player < 0 || player >= len(r.players) {
		return 0, ErrPlayerOutOfBounds
	}
	return len(r.hands[player]), nil
}

// CurrentColor returns the color in play: the enforced color when the top
// discard is wild, otherwise the top card's own color
func (r *Round) CurrentColor() deck.Color {
	if r.enforcedColor != nil {
		return *r.enforcedColor
	}
	return r.top().Color
}

// Direction returns the current direction of play as its memento label
func (r *Round) Direction() string {
	if r.direction == clockwise {
		return DirectionClockwise
	}
	return DirectionCounterclockwise
}

func (r *Round) top() deck.Card {
	return r.discardPile[len(r.discardPile)-1]
}

// playerAt resolves the player index steps seats away from the player in turn
// in the current direction
func (r *Round) playerAt(steps int) int {
	n := len(r.players)
	return ((r.current+steps*r.direction)%n + n) % n
}

// replenishDrawPile reshuffles the discard pile underneath its top card into
// a fresh draw pile when the draw pile is empty. Fails only when the discard
// pile has nothing but its top card left.
func (r *Round) replenishDrawPile() error {
	if len(r.drawPile) > 0 {
		return nil
	}
	if len(r.discardPile) <= 1 {
		return ErrDrawPileExhausted
	}

	top := r.top()
	refill := r.discardPile[:len(r.discardPile)-1].Copy()
	refill.Shuffle(r.shuffler)
	r.drawPile = refill
	r.discardPile = deck.Pile{top}
	return nil
}

// penalize deals n penalty cards to the named player, stopping early if the
// game state is fully exhausted
func (r *Round) penalize(player, n int) {
	for i := 0; i < n; i++ {
		if err := r.replenishDrawPile(); err != nil {
			break
		}
		r.hands[player] = append(r.hands[player], r.drawPile.Deal(1)...)
	}
	r.refreshUnoState(player)
}

// expireForeignWindow closes an open accusation window held by anyone other
// than the acting player. An action by a third party forfeits the chance to
// catch the windowed player.
func (r *Round) expireForeignWindow(actor int) {
	if r.window != nil && r.window.player != actor {
		r.window = nil
	}
}

// refreshUnoState recomputes the named player's declaration state after
// their hand changed size. Reaching exactly one card without a declaration
// opens an accusation window; any other size clears flag and window.
func (r *Round) refreshUnoState(player int) {
	switch {
	case len(r.hands[player]) != 1:
		r.saidUno[player] = false
		if r.window != nil && r.window.player == player {
			r.window = nil
		}
	case r.saidUno[player]:
		if r.window != nil && r.window.player == player {
			r.window = nil
		}
	default:
		r.window = &unoWindow{player: player}
	}
}

// end transitions the round to its terminal state and fires the end handlers
// exactly once, in registration order
func (r *Round) end(winner int) {
	r.ended = true
	r.winner = winner
	r.window = nil
	r.score = r.computeScore()

	handlers := r.endHandlers
	r.endHandlers = nil
	for _, h := range handlers {
		h(winner)
	}
}

func (r *Round) computeScore() int {
	total := 0
	for p, hand := range r.hands {
		if p == r.winner {
			continue
		}
		for _, c := range hand {
			total += c.Points()
		}
	}
	return total
}
