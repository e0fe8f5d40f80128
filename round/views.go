package round

import "github.com/adaolisa/uno/deck"

// DrawPileView is a read-mostly window over the round's draw pile,
// constructed per call. Anything it hands out is a copy; dealing through the
// view is not possible, so the refill-on-empty rule cannot be bypassed.
type DrawPileView struct {
	r *Round
}

// DrawPileView returns a view of the draw pile
func (r *Round) DrawPileView() DrawPileView {
	return DrawPileView{r: r}
}

// Size returns the number of cards left to draw
func (v DrawPileView) Size() int {
	return v.r.drawPile.Size()
}

// Peek returns the card that would be drawn next, without removing it
func (v DrawPileView) Peek() (deck.Card, bool) {
	return v.r.drawPile.Peek()
}

// Filter returns a copy containing only the cards the predicate keeps
func (v DrawPileView) Filter(keep func(deck.Card) bool) deck.Pile {
	return v.r.drawPile.Filter(keep)
}

// Memento returns the draw pile's plain serialisable form
func (v DrawPileView) Memento() []deck.CardMemento {
	return v.r.drawPile.Memento()
}

// Shuffle rearranges the draw pile in place with the round's own shuffler
func (v DrawPileView) Shuffle() {
	v.r.drawPile.Shuffle(v.r.shuffler)
}

// DiscardPileView is a read-only window over the round's discard pile,
// constructed per call. The top card and its invariants stay under the
// round's control.
type DiscardPileView struct {
	r *Round
}

// DiscardPileView returns a view of the discard pile
func (r *Round) DiscardPileView() DiscardPileView {
	return DiscardPileView{r: r}
}

// Size returns the number of discarded cards
func (v DiscardPileView) Size() int {
	return v.r.discardPile.Size()
}

// Top returns the top discard card
func (v DiscardPileView) Top() (deck.Card, bool) {
	return v.r.discardPile.Top()
}

// Filter returns a copy containing only the cards the predicate keeps
func (v DiscardPileView) Filter(keep func(deck.Card) bool) deck.Pile {
	return v.r.discardPile.Filter(keep)
}

// Memento returns the discard pile's plain serialisable form
func (v DiscardPileView) Memento() []deck.CardMemento {
	return v.r.discardPile.Memento()
}
