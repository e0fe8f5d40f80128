package deck

import "fmt"

// CardMemento is the plain serialisable form of a Card
type CardMemento struct {
	Type   string `json:"type"`
	Color  string `json:"color,omitempty"`
	Number *int   `json:"number,omitempty"`
}

// Memento returns the card's plain serialisable form
func (c Card) Memento() CardMemento {
	m := CardMemento{Type: c.Type.String()}
	if !c.IsWild() {
		m.Color = c.Color.String()
	}
	if c.Type == Numbered {
		n := c.Number
		m.Number = &n
	}
	return m
}

// Memento returns the pile's plain serialisable form
func (p Pile) Memento() []CardMemento {
	records := make([]CardMemento, len(p))
	for i, c := range p {
		records[i] = c.Memento()
	}
	return records
}

// CardFromMemento validates and reconstructs a single card
func CardFromMemento(m CardMemento) (Card, error) {
	t, err := parseCardType(m.Type)
	if err != nil {
		return Card{}, err
	}

	if t == Wild || t == WildDraw {
		if m.Color != "" {
			return Card{}, fmt.Errorf("%s card cannot carry a color", t)
		}
		if m.Number != nil {
			return Card{}, fmt.Errorf("%s card cannot carry a number", t)
		}
		return Card{Type: t}, nil
	}

	color, err := ParseColor(m.Color)
	if err != nil {
		return Card{}, err
	}

	if t == Numbered {
		if m.Number == nil {
			return Card{}, fmt.Errorf("numbered card is missing its number")
		}
		return NewNumberedCard(color, *m.Number)
	}

	if m.Number != nil {
		return Card{}, fmt.Errorf("%s card cannot carry a number", t)
	}
	return NewActionCard(t, color)
}

// FromMemento validates and reconstructs a pile from plain card records,
// failing on the first malformed entry
func FromMemento(records []CardMemento) (Pile, error) {
	pile := make(Pile, len(records))
	for i, m := range records {
		card, err := CardFromMemento(m)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		pile[i] = card
	}
	return pile, nil
}

func parseCardType(name string) (CardType, error) {
	for i, n := range typeNames {
		if n == name {
			return CardType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown card type %q", name)
}
