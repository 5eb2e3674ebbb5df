package domain

// ContainsCard reports whether card is in hand.
func ContainsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

// RemoveCard returns a new hand without the first occurrence of card.
func RemoveCard(hand []Card, card Card) ([]Card, bool) {
	for i, c := range hand {
		if c == card {
			updated := make([]Card, 0, len(hand)-1)
			updated = append(updated, hand[:i]...)
			return append(updated, hand[i+1:]...), true
		}
	}
	return hand, false
}

// CountPlayersWithCards returns the number of players still holding cards.
func CountPlayersWithCards(g *Game) int {
	count := 0
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			count++
		}
	}
	return count
}
