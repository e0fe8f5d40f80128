package deck

import (
	"math/rand"
	"time"
)

// Pile represents an ordered pile of cards. Cards are dealt from the front;
// the last element is the top for discard-style piles.
type Pile []Card

// Shuffler rearranges a sequence of cards in place
type Shuffler func([]Card)

// StandardShuffler is a pseudo-random in-place shuffle
func StandardShuffler(cards []Card) {
	rand.Seed(time.Now().UnixNano())
	for i := len(cards) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// NewFullDeck creates the complete 108-card deck: per color one 0, two each
// of 1-9, two SKIP, two REVERSE and two DRAW, plus four WILD and four WILD DRAW.
func NewFullDeck() Pile {
	cards := Pile{}
	for _, color := range Colors() {
		cards = append(cards, Card{Type: Numbered, Color: color, Number: 0})
		for n := 1; n <= 9; n++ {
			c := Card{Type: Numbered, Color: color, Number: n}
			cards = append(cards, c, c)
		}
		for _, t := range []CardType{Skip, Reverse, Draw} {
			c := Card{Type: t, Color: color}
			cards = append(cards, c, c)
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, Card{Type: Wild}, Card{Type: WildDraw})
	}
	return cards
}

// Size returns the number of cards in the pile
func (p Pile) Size() int {
	return len(p)
}

// Deal removes and returns up to n cards from the front of the pile
func (p *Pile) Deal(n int) []Card {
	if n < 0 || n > len(*p) {
		return []Card{}
	}
	dealt := make([]Card, n)
	copy(dealt, (*p)[:n])
	*p = (*p)[n:]
	return dealt
}

// Shuffle rearranges the pile in place
func (p *Pile) Shuffle(shuffle Shuffler) {
	shuffle(*p)
}

// Filter returns a copy containing only the cards the predicate keeps
func (p Pile) Filter(keep func(Card) bool) Pile {
	filtered := Pile{}
	for _, c := range p {
		if keep(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Peek returns the front card without removing it
func (p Pile) Peek() (Card, bool) {
	if len(p) == 0 {
		return Card{}, false
	}
	return p[0], true
}

// Top returns the last card without removing it
func (p Pile) Top() (Card, bool) {
	if len(p) == 0 {
		return Card{}, false
	}
	return p[len(p)-1], true
}

// Copy returns an independent copy of the pile
func (p Pile) Copy() Pile {
	cp := make(Pile, len(p))
	copy(cp, p)
	return cp
}
