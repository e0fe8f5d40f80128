package deck

import (
	"testing"

	utils "github.com/adaolisa/uno/internal"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"lowest numbered card", Card{Type: Numbered, Color: Red, Number: 0}, "RED 0"},
		{"highest numbered card", Card{Type: Numbered, Color: Blue, Number: 9}, "BLUE 9"},
		{"skip", Card{Type: Skip, Color: Green}, "GREEN SKIP"},
		{"reverse", Card{Type: Reverse, Color: Yellow}, "YELLOW REVERSE"},
		{"draw two", Card{Type: Draw, Color: Red}, "RED DRAW"},
		{"wild", Card{Type: Wild}, "WILD"},
		{"wild draw four", Card{Type: WildDraw}, "WILD DRAW"},
	}

	for _, c := range cases {
		utils.AssertEqual(t, c.card.String(), c.expected)
	}

	t.Run("constructors reject out-of-range arguments", func(t *testing.T) {
		_, err := NewNumberedCard(Red, 10)
		utils.AssertErrored(t, err)

		_, err = NewNumberedCard(Red, -1)
		utils.AssertErrored(t, err)

		_, err = NewNumberedCard(Color(7), 4)
		utils.AssertErrored(t, err)

		_, err = NewActionCard(Numbered, Red)
		utils.AssertErrored(t, err)

		_, err = NewActionCard(Skip, Color(-1))
		utils.AssertErrored(t, err)

		_, err = NewWildCard(Skip)
		utils.AssertErrored(t, err)
	})

	t.Run("point values", func(t *testing.T) {
		utils.AssertEqual(t, Card{Type: Numbered, Color: Red, Number: 7}.Points(), 7)
		utils.AssertEqual(t, Card{Type: Skip, Color: Red}.Points(), 20)
		utils.AssertEqual(t, Card{Type: Reverse, Color: Red}.Points(), 20)
		utils.AssertEqual(t, Card{Type: Draw, Color: Red}.Points(), 20)
		utils.AssertEqual(t, Card{Type: Wild}.Points(), 50)
		utils.AssertEqual(t, Card{Type: WildDraw}.Points(), 50)
	})

	t.Run("wildness", func(t *testing.T) {
		utils.AssertTrue(t, Card{Type: Wild}.IsWild())
		utils.AssertTrue(t, Card{Type: WildDraw}.IsWild())
		utils.AssertEqual(t, Card{Type: Skip, Color: Red}.IsWild(), false)
	})
}

func TestColors(t *testing.T) {
	utils.AssertEqual(t, len(Colors()), 4)

	for _, color := range Colors() {
		parsed, err := ParseColor(color.String())
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, parsed, color)
	}

	_, err := ParseColor("PURPLE")
	utils.AssertErrored(t, err)
}
