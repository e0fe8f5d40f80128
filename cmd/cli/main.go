package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/adaolisa/uno/deck"
	"github.com/adaolisa/uno/round"
	"github.com/adaolisa/uno/store"
	"github.com/joeshaw/envdecode"
)

type config struct {
	Players        string `env:"UNO_PLAYERS,default=Alice;Bobby;Chidi"`
	Dealer         int    `env:"UNO_DEALER,default=0"`
	CardsPerPlayer int    `env:"UNO_CARDS_PER_PLAYER,default=7"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatalf("bad configuration: %s", err)
	}

	names := strings.Split(cfg.Players, ";")
	r, err := round.NewRound(round.Opts{
		Players:        names,
		Dealer:         cfg.Dealer,
		CardsPerPlayer: cfg.CardsPerPlayer,
	})
	if err != nil {
		log.Fatalf("could not deal a round: %s", err)
	}

	rounds := store.NewInMemoryRoundStore()
	roundID, err := rounds.Add(r)
	if err != nil {
		log.Fatal(err)
	}

	r.OnEnd(func(winner int) {
		name, _ := r.Player(winner)
		score, _ := r.Score()
		fmt.Printf("\n%s wins with %d points!\n", name, score)
	})

	fmt.Printf("Round %s\nPlayers: %s\n", roundID, strings.Join(names, ", "))
	fmt.Println("Commands: play N [COLOR] | draw | uno N | catch ACCUSER ACCUSED | hand | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for !r.HasEnded() {
		printTurn(r)
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" {
			break
		}
		if err := dispatch(r, args); err != nil {
			fmt.Println(err)
		}
	}
}

func printTurn(r *round.Round) {
	current, ok := r.PlayerInTurn()
	if !ok {
		return
	}
	name, _ := r.Player(current)
	top, _ := r.DiscardPileView().Top()
	fmt.Printf("\nTop of discard: %s (color in play: %s)\n", top, r.CurrentColor())
	hand, _ := r.Hand(current)
	fmt.Printf("%s's hand: %s\n", name, handString(hand))
}

func handString(hand deck.Pile) string {
	labels := make([]string, len(hand))
	for i, c := range hand {
		labels[i] = fmt.Sprintf("[%d] %s", i, c)
	}
	return strings.Join(labels, "  ")
}

func dispatch(r *round.Round, args []string) error {
	switch args[0] {
	case "play":
		if len(args) < 2 {
			return fmt.Errorf("usage: play N [COLOR]")
		}
		cardIndex, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("not a card index: %s", args[1])
		}
		if len(args) == 3 {
			color, err := deck.ParseColor(strings.ToUpper(args[2]))
			if err != nil {
				return err
			}
			_, err = r.Play(cardIndex, color)
			return err
		}
		_, err = r.Play(cardIndex)
		return err

	case "draw":
		card, err := r.Draw()
		if err != nil {
			return err
		}
		fmt.Printf("drew %s\n", card)
		return nil

	case "uno":
		if len(args) < 2 {
			return fmt.Errorf("usage: uno N")
		}
		player, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("not a player index: %s", args[1])
		}
		return r.SayUno(player)

	case "catch":
		if len(args) < 3 {
			return fmt.Errorf("usage: catch ACCUSER ACCUSED")
		}
		accuser, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("not a player index: %s", args[1])
		}
		accused, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("not a player index: %s", args[2])
		}
		caught, err := r.CatchUnoFailure(accuser, accused)
		if err != nil {
			return err
		}
		if caught {
			fmt.Println("caught! 4 penalty cards dealt")
		} else {
			fmt.Println("no catch")
		}
		return nil

	case "hand":
		printTurn(r)
		return nil
	}
	return fmt.Errorf("unknown command %q", args[0])
}
