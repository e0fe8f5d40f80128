package round

import (
	"testing"

	"github.com/adaolisa/uno/deck"
	utils "github.com/adaolisa/uno/internal"
)

func TestSayUno(t *testing.T) {
	t.Run("fails with more than two cards in hand", func(t *testing.T) {
		r := riggedRound([]deck.Pile{
			{num(deck.Red, 3), num(deck.Blue, 5), num(deck.Green, 2)},
			{num(deck.Green, 1)},
		}, num(deck.Red, 7), 0)

		utils.AssertErrorIs(t, r.SayUno(0), ErrTooManyCardsForUno)
		utils.AssertNoError(t, r.SayUno(1))
	})

	t.Run("validates the player index", func(t *testing.T) {
		r := riggedRound([]deck.Pile{
			{num(deck.Red, 3)},
			{num(deck.Green, 1)},
		}, num(deck.Red, 7), 0)

		utils.AssertErrorIs(t, r.SayUno(2), ErrPlayerOutOfBounds)
		utils.AssertErrorIs(t, r.SayUno(-1), ErrPlayerOutOfBounds)
	})
}

func TestCatchUnoFailure(t *testing.T) {
	// three players; player 0 plays down to one card without declaring
	windowOpenRound := func() *Round {
		r := riggedRound([]deck.Pile{
			{num(deck.Red, 3), num(deck.Red, 4)},
			{num(deck.Green, 3), num(deck.Green, 5)},
			{num(deck.Yellow, 2), num(deck.Yellow, 6)},
		}, num(deck.Red, 7), 0)

		_, err := r.Play(0)
		utils.AssertNoError(t, err)
		return r
	}

	t.Run("a successful catch deals four penalty cards", func(t *testing.T) {
		r := windowOpenRound()

		caught, err := r.CatchUnoFailure(1, 0)
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, caught)

		size, _ := r.HandSize(0)
		utils.AssertEqual(t, size, 5)

		// window consumed: a second accusation comes up empty
		caught, err = r.CatchUnoFailure(1, 0)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, caught, false)
	})

	t.Run("declaring while the window is open closes it without penalty", func(t *testing.T) {
		r := windowOpenRound()

		utils.AssertNoError(t, r.SayUno(0))

		caught, err := r.CatchUnoFailure(1, 0)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, caught, false)

		size, _ := r.HandSize(0)
		utils.AssertEqual(t, size, 1)
	})

	t.Run("another player's play closes the window", func(t *testing.T) {
		r := windowOpenRound()

		// player 1 is in turn after player 0's play
		_, err := r.Play(0)
		utils.AssertNoError(t, err)

		caught, err := r.CatchUnoFailure(2, 0)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, caught, false)
	})

	t.Run("another player's draw closes the window", func(t *testing.T) {
		r := windowOpenRound()
		r.drawPile = deck.Pile{num(deck.Blue, 9)}

		_, err := r.Draw()
		utils.AssertNoError(t, err)

		caught, err := r.CatchUnoFailure(2, 0)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, caught, false)
	})

	t.Run("a failed accusation does not close the window", func(t *testing.T) {
		r := windowOpenRound()

		caught, err := r.CatchUnoFailure(2, 1)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, caught, false)

		caught, err = r.CatchUnoFailure(2, 0)
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, caught)
	})

	t.Run("declaring ahead of the play prevents the window", func(t *testing.T) {
		r := riggedRound([]deck.Pile{
			{num(deck.Red, 3), num(deck.Red, 4)},
			{num(deck.Green, 1), num(deck.Green, 5)},
		}, num(deck.Red, 7), 0)

		utils.AssertNoError(t, r.SayUno(0))
		_, err := r.Play(0)
		utils.AssertNoError(t, err)

		caught, err := r.CatchUnoFailure(1, 0)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, caught, false)
	})

	t.Run("penalty cards reset the declaration", func(t *testing.T) {
		r := windowOpenRound()

		caught, _ := r.CatchUnoFailure(1, 0)
		utils.AssertTrue(t, caught)
		utils.AssertEqual(t, r.saidUno[0], false)
		utils.AssertTrue(t, r.window == nil)
	})

	t.Run("validates both player indices", func(t *testing.T) {
		r := windowOpenRound()

		_, err := r.CatchUnoFailure(3, 0)
		utils.AssertErrorIs(t, err, ErrPlayerOutOfBounds)
		_, err = r.CatchUnoFailure(1, -1)
		utils.AssertErrorIs(t, err, ErrPlayerOutOfBounds)
	})
}
