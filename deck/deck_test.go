package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckOrdered(t *testing.T) {
	d := New()

	require.Equal(t, Size, d.Len())
	require.False(t, d.IsEmpty())

	// Canonical order: suits Clubs..Spades, ranks ascending within each suit.
	assert.Equal(t, NewCard(Two, Clubs), d.At(0))
	assert.Equal(t, NewCard(Three, Clubs), d.At(1))
	assert.Equal(t, NewCard(Ace, Clubs), d.At(12))
	assert.Equal(t, NewCard(Two, Diamonds), d.At(13))
	assert.Equal(t, NewCard(King, Spades), d.At(50))
	assert.Equal(t, NewCard(Ace, Spades), d.At(51))
}

func TestNewDeckCompleteCartesianProduct(t *testing.T) {
	d := New()

	seen := make(map[Card]int)
	for _, card := range d.Cards() {
		seen[card]++
	}

	require.Len(t, seen, Size, "deck should hold 52 distinct cards")
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			assert.Equal(t, 1, seen[NewCard(rank, suit)], "missing or duplicated %s", NewCard(rank, suit))
		}
	}
}

func TestDrawFromTop(t *testing.T) {
	d := New()

	card, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, NewCard(Ace, Spades), card, "top of an ordered deck is the Ace of Spades")
	assert.Equal(t, 51, d.Len())

	card, ok = d.Draw()
	require.True(t, ok)
	assert.Equal(t, NewCard(King, Spades), card)
	assert.Equal(t, 50, d.Len())
}

func TestDrawPartitionsDeck(t *testing.T) {
	d := NewSeeded(42)
	d.Shuffle()

	drawn := make(map[Card]bool)
	for i := 0; i < 20; i++ {
		card, ok := d.Draw()
		require.True(t, ok)
		require.False(t, drawn[card], "card %s drawn twice", card)
		drawn[card] = true
	}

	require.Equal(t, 32, d.Len())
	for _, card := range d.Cards() {
		assert.False(t, drawn[card], "card %s both drawn and remaining", card)
	}
	assert.Len(t, drawn, 20)
}

func TestDrawFromEmptyDeck(t *testing.T) {
	d := New()
	for i := 0; i < Size; i++ {
		_, ok := d.Draw()
		require.True(t, ok, "draw %d should succeed", i+1)
	}

	require.True(t, d.IsEmpty())
	_, ok := d.Draw()
	assert.False(t, ok, "draw from an empty deck reports no card")
}

func TestShufflePermutes(t *testing.T) {
	d := NewSeeded(42)
	d.Shuffle()

	require.Equal(t, Size, d.Len())

	seen := make(map[Card]bool)
	for _, card := range d.Cards() {
		require.False(t, seen[card], "duplicate %s after shuffle", card)
		seen[card] = true
	}
	require.Len(t, seen, Size)

	// Different seeds should (overwhelmingly) give different orders.
	other := NewSeeded(43)
	other.Shuffle()
	assert.NotEqual(t, d.Cards(), other.Cards())
}

func TestShuffleIsSeedReproducible(t *testing.T) {
	d1 := NewSeeded(7)
	d1.Shuffle()
	d2 := NewSeeded(7)
	d2.Shuffle()

	assert.Equal(t, d1.Cards(), d2.Cards())
}

func TestShuffleReordersOnlyRemainder(t *testing.T) {
	d := NewSeeded(42)
	for i := 0; i < 10; i++ {
		d.Draw()
	}

	before := make(map[Card]bool)
	for _, card := range d.Cards() {
		before[card] = true
	}

	d.Shuffle()

	require.Equal(t, 42, d.Len())
	for _, card := range d.Cards() {
		assert.True(t, before[card], "shuffle introduced %s", card)
	}
}

func TestShuffleEmptyAndSingleCardDeck(t *testing.T) {
	d := New()
	hands := d.Deal(1, 51)
	require.Equal(t, 51, hands[0].Len())
	require.Equal(t, 1, d.Len())

	d.Shuffle() // single card, no-op
	assert.Equal(t, 1, d.Len())

	d.Draw()
	d.Shuffle() // empty, no-op
	assert.True(t, d.IsEmpty())
}

func TestDealRoundRobin(t *testing.T) {
	d := New()
	hands := d.Deal(3, 2)

	require.Len(t, hands, 3)
	require.Equal(t, 46, d.Len())
	for i := range hands {
		require.Equal(t, 2, hands[i].Len())
	}

	// Round-robin from the top: one card to each hand per round.
	assert.Equal(t, NewCard(Ace, Spades), hands[0].At(0))
	assert.Equal(t, NewCard(King, Spades), hands[1].At(0))
	assert.Equal(t, NewCard(Queen, Spades), hands[2].At(0))
	assert.Equal(t, NewCard(Jack, Spades), hands[0].At(1))
	assert.Equal(t, NewCard(Ten, Spades), hands[1].At(1))
	assert.Equal(t, NewCard(Nine, Spades), hands[2].At(1))
}

func TestDealTooManyCardsPanics(t *testing.T) {
	d := New()
	assert.Panics(t, func() {
		d.Deal(27, 2)
	})
}

func TestReset(t *testing.T) {
	d := NewSeeded(42)
	d.Shuffle()
	for i := 0; i < 10; i++ {
		d.Draw()
	}
	require.Equal(t, 42, d.Len())

	d.Reset()

	require.Equal(t, Size, d.Len())
	assert.Equal(t, NewCard(Two, Clubs), d.At(0))
	assert.Equal(t, NewCard(Ace, Spades), d.At(51))
}

func TestNewShuffled(t *testing.T) {
	d := NewShuffled()

	require.Equal(t, Size, d.Len())
	seen := make(map[Card]bool)
	for _, card := range d.Cards() {
		seen[card] = true
	}
	assert.Len(t, seen, Size)
}
