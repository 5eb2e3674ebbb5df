package console

import (
	"strconv"
	"strings"

	"kingscorner/internal/domain"
)

// CardText renders a card as rank plus suit glyph, e.g. "10♡" or "K♠".
func CardText(c domain.Card) string {
	return c.String()
}

// TableText renders one line per pile, F0-F3 then C4-C7, each as
// "<bottom>...<top>".
func TableText(t *domain.Table) string {
	lines := make([]string, 0, domain.FoundationCount+domain.CornerCount)
	for _, loc := range t.Locations() {
		line := loc.String() + ": "
		if bottom, ok := t.Bottom(loc); ok {
			top, _ := t.Top(loc)
			line += CardText(bottom) + "..." + CardText(top)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// HandText renders the hand highest rank first with display indexes from 8.
// The input slice is not reordered.
func HandText(hand []domain.Card) string {
	var b strings.Builder
	b.WriteString("Hand:")
	for i, c := range domain.SortedDescending(hand) {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(domain.HandIndexOffset + i))
		b.WriteString(":")
		b.WriteString(CardText(c))
	}
	return b.String()
}

// MoveText describes an applied move, e.g. "Moving 8♠ to F0" or "Moving F1 to C4".
func MoveText(m domain.Move) string {
	if m.FromHand() {
		return "Moving " + CardText(m.Card) + " to " + m.To.String()
	}
	return "Moving " + m.From.String() + " to " + m.To.String()
}
