package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/cards/deck"
	"github.com/lox/cards/internal/display"
)

type CLI struct {
	Shuffle ShuffleCmd `cmd:"" default:"1" help:"Print a shuffled deck"`
	Deal    DealCmd    `cmd:"" help:"Deal hands from a shuffled deck"`
	Show    ShowCmd    `cmd:"" help:"Pretty-print cards given in compact notation (e.g. AsTc)"`
}

type ShuffleCmd struct {
	Seed *int64 `help:"Random seed for a reproducible shuffle"`
}

func (c *ShuffleCmd) Run() error {
	d := newDeck(c.Seed)
	d.Shuffle()

	fmt.Print("Shuffled deck: ")
	for {
		card, ok := d.Draw()
		if !ok {
			break
		}
		fmt.Printf("%s ", display.Card(card))
	}
	fmt.Println()
	return nil
}

type DealCmd struct {
	Hands int    `short:"n" default:"3" help:"Number of hands to deal"`
	Cards int    `short:"c" default:"2" help:"Cards per hand"`
	Seed  *int64 `help:"Random seed for a reproducible deal"`
}

func (c *DealCmd) Run() error {
	if c.Hands < 1 || c.Cards < 1 {
		return fmt.Errorf("hands and cards per hand must be positive")
	}

	d := newDeck(c.Seed)
	d.Shuffle()

	if need := c.Hands * c.Cards; need > d.Len() {
		log.Fatal("Not enough cards in the deck", "need", need, "have", d.Len())
	}

	hands := d.Deal(c.Hands, c.Cards)
	for i, hand := range hands {
		fmt.Printf("%s %s\n", display.Label(fmt.Sprintf("Hand %d:", i+1)), display.Hand(hand))
	}
	fmt.Println(display.Info(fmt.Sprintf("%d cards remain in the deck", d.Len())))
	return nil
}

type ShowCmd struct {
	Notation []string `arg:"" help:"Cards in compact notation, e.g. 'AsKh' or 'As Kh'"`
}

func (c *ShowCmd) Run() error {
	cards, err := deck.ParseCards(strings.Join(c.Notation, ""))
	if err != nil {
		return fmt.Errorf("parsing cards: %w", err)
	}
	fmt.Println(display.Cards(cards))
	return nil
}

func newDeck(seed *int64) *deck.Deck {
	if seed != nil {
		return deck.NewSeeded(*seed)
	}
	return deck.New()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cards"),
		kong.Description("Standard 52-card deck: shuffle, deal, display."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
