package domain

import (
	"math/rand"
	"sort"
)

// DefaultRankCeiling is the highest rank of a standard deck.
const DefaultRankCeiling = King

// DefaultSuits lists the suits of a standard deck in deal order.
var DefaultSuits = []Suit{Spades, Hearts, Clubs, Diamonds}

// NewDeck returns every (rank, suit) pair for ranks 1..rankCeiling, suit-major.
func NewDeck(rankCeiling int, suits []Suit) []Card {
	deck := make([]Card, 0, rankCeiling*len(suits))
	for _, s := range suits {
		for r := 1; r <= rankCeiling; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// DefaultDeck returns the ordered 52-card deck.
func DefaultDeck() []Card {
	return NewDeck(DefaultRankCeiling, DefaultSuits)
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SortHandDescending orders cards from highest to lowest rank, breaking ties by suit name.
func SortHandDescending(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].Rank != cards[j].Rank {
			return cards[i].Rank > cards[j].Rank
		}
		return cards[i].Suit > cards[j].Suit
	})
}

// SortedDescending returns a sorted copy, leaving the input untouched.
func SortedDescending(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	SortHandDescending(out)
	return out
}
