package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/cards/deck"
)

// Styles for card rendering
var (
	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Card renders a single card, red suits highlighted
func Card(c deck.Card) string {
	if c.IsRed() {
		return redCardStyle.Render(c.String())
	}
	return blackCardStyle.Render(c.String())
}

// Cards renders a run of cards space-separated
func Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// Hand renders the cards held in a hand
func Hand(h deck.Hand) string {
	return Cards(h.Cards())
}

// Label renders a heading such as "Hand 1:"
func Label(s string) string {
	return labelStyle.Render(s)
}

// Info renders supporting detail such as remaining-card counts
func Info(s string) string {
	return infoStyle.Render(s)
}
