package deck

import "strings"

// Hand is the ordered collection of cards held by one participant after
// dealing. The zero value is an empty hand ready to use.
type Hand struct {
	cards []Card
}

// Len returns the count of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsEmpty returns true if the hand contains no cards
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Push appends a card to the hand
func (h *Hand) Push(card Card) {
	h.cards = append(h.cards, card)
}

// At returns the card at position i. Out-of-range positions panic, like
// slice indexing.
func (h *Hand) At(i int) Card {
	return h.cards[i]
}

// Cards returns a copy of the cards in the hand, in the order received
func (h *Hand) Cards() []Card {
	cards := make([]Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// String returns the hand's cards space-separated (e.g., "A♠ K♥")
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
