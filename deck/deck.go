package deck

import (
	"fmt"
	rand "math/rand/v2"
	"time"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a deck of playing cards.
//
// The cards are ordered from the bottom to the top of the deck: the top of
// the deck is the end of the sequence, so drawing takes a card off the end.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck in canonical order: suits in
// enumeration order, ranks ascending within each suit. The top card is the
// Ace of Spades.
func New() *Deck {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a canonically ordered deck whose shuffles are
// reproducible from the given seed.
func NewSeeded(seed int64) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   NewRand(seed),
	}
	d.fill()
	return d
}

// NewShuffled creates a new deck and shuffles it
func NewShuffled() *Deck {
	d := New()
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
}

// Shuffle randomizes the order of the cards currently in the deck using
// Fisher-Yates. Shuffling a partially dealt deck reorders only the
// remaining cards.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card from the deck. The second return
// value is false when no cards remain.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// Deal creates hands and fills them round-robin from the top of the deck:
// one card to each hand in turn per round, for cardsPerHand rounds.
//
// Requesting more cards than remain is a programmer error and panics;
// callers size requests against Len first.
func (d *Deck) Deal(hands, cardsPerHand int) []Hand {
	if need := hands * cardsPerHand; need > len(d.cards) {
		panic(fmt.Sprintf("deck: deal of %d hands x %d cards needs %d cards, %d remain",
			hands, cardsPerHand, need, len(d.cards)))
	}

	dealt := make([]Hand, hands)
	for round := 0; round < cardsPerHand; round++ {
		for i := range dealt {
			card, _ := d.Draw()
			dealt[i].Push(card)
		}
	}
	return dealt
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// At returns the card at position i without removing it. Position 0 is the
// bottom of the deck and Len()-1 the top. Out-of-range positions panic,
// like slice indexing.
func (d *Deck) At(i int) Card {
	return d.cards[i]
}

// Cards returns a copy of the remaining cards, bottom to top
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Reset restores the deck to the full 52 cards in canonical order
func (d *Deck) Reset() {
	d.fill()
}
