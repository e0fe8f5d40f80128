package round

import (
	"errors"
	"fmt"

	"github.com/adaolisa/uno/deck"
)

const (
	DirectionClockwise        = "clockwise"
	DirectionCounterclockwise = "counterclockwise"
)

var (
	ErrHandCountMismatch      = errors.New("memento hand count does not match player count")
	ErrEmptyDiscardPile       = errors.New("memento discard pile must not be empty")
	ErrTooManyEmptyHands      = errors.New("memento has more than one empty hand")
	ErrMissingPlayerInTurn    = errors.New("active round memento requires a player in turn")
	ErrUnexpectedPlayerInTurn = errors.New("ended round memento must not carry a player in turn")
	ErrColorMismatch          = errors.New("memento color contradicts the top discard card")
	ErrUnknownDirection       = errors.New("memento direction is not a known label")
)

// Memento is the plain, fully self-describing snapshot of a round, stable
// across process boundaries.
type Memento struct {
	Players          []string             `json:"players"`
	Hands            [][]deck.CardMemento `json:"hands"`
	DrawPile         []deck.CardMemento   `json:"drawPile"`
	DiscardPile      []deck.CardMemento   `json:"discardPile"`
	CurrentColor     string               `json:"currentColor"`
	CurrentDirection string               `json:"currentDirection"`
	Dealer           int                  `json:"dealer"`
	PlayerInTurn     *int                 `json:"playerInTurn,omitempty"`
}

// ToMemento exports a fully independent deep snapshot of the round
func (r *Round) ToMemento() Memento {
	hands := make([][]deck.CardMemento, len(r.hands))
	for i, hand := range r.hands {
		hands[i] = hand.Memento()
	}

	m := Memento{
		Players:          append([]string(nil), r.players...),
		Hands:            hands,
		DrawPile:         r.drawPile.Memento(),
		DiscardPile:      r.discardPile.Memento(),
		CurrentColor:     r.CurrentColor().String(),
		CurrentDirection: r.Direction(),
		Dealer:           r.dealer,
	}
	if !r.ended {
		current := r.current
		m.PlayerInTurn = &current
	}
	return m
}

// FromMemento validates a snapshot in full and reconstructs the round it
// describes. A nil shuffler selects the standard pseudo-random shuffle.
// The round is never constructed into an inconsistent state: any violation
// fails with a descriptive error.
func FromMemento(m Memento, shuffler deck.Shuffler) (*Round, error) {
	if len(m.Players) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(m.Players) > maxPlayers {
		return nil, ErrTooManyPlayers
	}
	if m.Dealer < 0 || m.Dealer >= len(m.Players) {
		return nil, ErrDealerOutOfBounds
	}
	if len(m.Hands) != len(m.Players) {
		return nil, ErrHandCountMismatch
	}
	if len(m.DiscardPile) == 0 {
		return nil, ErrEmptyDiscardPile
	}

	hands := make([]deck.Pile, len(m.Hands))
	emptyHands := 0
	winner := 0
	for i, records := range m.Hands {
		hand, err := deck.FromMemento(records)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		hands[i] = hand
		if len(hand) == 0 {
			emptyHands++
			winner = i
		}
	}
	if emptyHands > 1 {
		return nil, ErrTooManyEmptyHands
	}

	drawPile, err := deck.FromMemento(m.DrawPile)
	if err != nil {
		return nil, fmt.Errorf("draw pile: %w", err)
	}
	discardPile, err := deck.FromMemento(m.DiscardPile)
	if err != nil {
		return nil, fmt.Errorf("discard pile: %w", err)
	}

	direction := 0
	switch m.CurrentDirection {
	case DirectionClockwise:
		direction = clockwise
	case DirectionCounterclockwise:
		direction = counterclockwise
	default:
		return nil, ErrUnknownDirection
	}

	color, err := deck.ParseColor(m.CurrentColor)
	if err != nil {
		return nil, err
	}

	top, _ := discardPile.Top()
	var enforced *deck.Color
	if top.IsWild() {
		enforced = &color
	} else if top.Color != color {
		return nil, ErrColorMismatch
	}

	ended := emptyHands == 1
	if ended && m.PlayerInTurn != nil {
		return nil, ErrUnexpectedPlayerInTurn
	}
	if !ended {
		if m.PlayerInTurn == nil {
			return nil, ErrMissingPlayerInTurn
		}
		if *m.PlayerInTurn < 0 || *m.PlayerInTurn >= len(m.Players) {
			return nil, ErrPlayerOutOfBounds
		}
	}

	if shuffler == nil {
		shuffler = deck.StandardShuffler
	}

	r := &Round{
		players:       append([]string(nil), m.Players...),
		dealer:        m.Dealer,
		hands:         hands,
		drawPile:      drawPile,
		discardPile:   discardPile,
		direction:     direction,
		enforcedColor: enforced,
		saidUno:       make([]bool, len(m.Players)),
		shuffler:      shuffler,
	}
	if ended {
		r.ended = true
		r.winner = winner
		r.score = r.computeScore()
	} else {
		r.current = *m.PlayerInTurn
	}
	return r, nil
}
