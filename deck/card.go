package deck

import (
	"errors"
	"fmt"
)

// CardType identifies a card variant
type CardType int

var typeNames = []string{"NUMBERED", "SKIP", "REVERSE", "DRAW", "WILD", "WILD DRAW"}

const (
	Numbered CardType = iota
	Skip
	Reverse
	Draw
	Wild
	WildDraw
)

func (t CardType) String() string {
	if t < Numbered || t > WildDraw {
		return "UNKNOWN"
	}
	return typeNames[t]
}

// Color represents a card color
type Color int

var colorNames = []string{"RED", "YELLOW", "GREEN", "BLUE"}

const (
	Red Color = iota
	Yellow
	Green
	Blue
)

func (c Color) String() string {
	if c < Red || c > Blue {
		return "UNKNOWN"
	}
	return colorNames[c]
}

// Colors returns the fixed set of valid card colors
func Colors() []Color {
	return []Color{Red, Yellow, Green, Blue}
}

// ParseColor converts a color name back into a Color
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// Card represents a playing card. It is a closed tagged variant: Color is
// meaningful for all types except Wild and WildDraw, Number only for Numbered.
type Card struct {
	Type   CardType
	Color  Color
	Number int
}

// NewNumberedCard constructs a numbered card
func NewNumberedCard(color Color, number int) (Card, error) {
	if color < Red || color > Blue {
		return Card{}, errors.New("color out of range")
	}
	if number < 0 || number > 9 {
		return Card{}, errors.New("number out of range")
	}
	return Card{Type: Numbered, Color: color, Number: number}, nil
}

// NewActionCard constructs a skip, reverse or draw-two card
func NewActionCard(t CardType, color Color) (Card, error) {
	if t != Skip && t != Reverse && t != Draw {
		return Card{}, errors.New("not an action card type")
	}
	if color < Red || color > Blue {
		return Card{}, errors.New("color out of range")
	}
	return Card{Type: t, Color: color}, nil
}

// NewWildCard constructs a wild or wild-draw-four card
func NewWildCard(t CardType) (Card, error) {
	if t != Wild && t != WildDraw {
		return Card{}, errors.New("not a wild card type")
	}
	return Card{Type: t}, nil
}

// IsWild reports whether the card is a colorless variant
func (c Card) IsWild() bool {
	return c.Type == Wild || c.Type == WildDraw
}

// Points returns a card's score value
func (c Card) Points() int {
	switch c.Type {
	case Numbered:
		return c.Number
	case Skip, Reverse, Draw:
		return 20
	default:
		return 50
	}
}

func (c Card) String() string {
	switch c.Type {
	case Numbered:
		return fmt.Sprintf("%s %d", c.Color, c.Number)
	case Wild, WildDraw:
		return c.Type.String()
	default:
		return fmt.Sprintf("%s %s", c.Color, c.Type)
	}
}
