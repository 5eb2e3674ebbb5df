package app

import "kingscorner/internal/domain"

// HandSize is the number of cards dealt to each player.
const HandSize = 7

// MinPlayersToStartGame defines the minimum number of seats required to start a game.
const MinPlayersToStartGame = 2

// MaxPlayers returns how many hands a deck of deckSize cards can deal while
// still seeding every foundation pile.
func MaxPlayers(deckSize int) int {
	if deckSize < domain.FoundationCount {
		return 0
	}
	return (deckSize - domain.FoundationCount) / HandSize
}
