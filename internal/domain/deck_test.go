package domain

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := DefaultDeck()
	if len(deck) != 52 {
		t.Fatalf("deck size = %d, want 52", len(deck))
	}

	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card found: %v", c)
		}
		seen[c] = true
		if c.Rank < 1 || c.Rank > King {
			t.Fatalf("rank out of range: %d", c.Rank)
		}
	}

	// Suit-major ordering.
	if deck[0] != (Card{Rank: 1, Suit: Spades}) || deck[12] != (Card{Rank: King, Suit: Spades}) {
		t.Fatalf("first suit block = %v..%v, want ace..king of spades", deck[0], deck[12])
	}
	if deck[13] != (Card{Rank: 1, Suit: Hearts}) {
		t.Fatalf("deck[13] = %v, want ace of hearts", deck[13])
	}
}

func TestNewDeck_SmallerCeiling(t *testing.T) {
	deck := NewDeck(10, DefaultSuits)
	if len(deck) != 40 {
		t.Fatalf("deck size = %d, want 40", len(deck))
	}
	for _, c := range deck {
		if c.Rank > 10 {
			t.Fatalf("rank %d above ceiling", c.Rank)
		}
	}
}

func TestShuffleDeck_KeepsCards(t *testing.T) {
	deck := DefaultDeck()
	shuffled := ShuffleDeck(deck, rand.New(rand.NewSource(7)))

	if reflect.DeepEqual(deck, shuffled) {
		t.Fatalf("shuffle left the deck in order")
	}
	if !reflect.DeepEqual(deck, DefaultDeck()) {
		t.Fatalf("shuffle mutated its input")
	}
	if !reflect.DeepEqual(SortedDescending(shuffled), SortedDescending(deck)) {
		t.Fatalf("shuffled deck holds different cards")
	}
}

func TestSortHandDescending(t *testing.T) {
	hand := []Card{
		{Rank: 1, Suit: Diamonds},
		{Rank: 11, Suit: Hearts},
		{Rank: 4, Suit: Spades},
		{Rank: 11, Suit: Spades},
		{Rank: King, Suit: Clubs},
	}
	got := SortedDescending(hand)
	want := []Card{
		{Rank: King, Suit: Clubs},
		{Rank: 11, Suit: Spades},
		{Rank: 11, Suit: Hearts},
		{Rank: 4, Suit: Spades},
		{Rank: 1, Suit: Diamonds},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SortedDescending() = %v, want %v", got, want)
	}
	if hand[0] != (Card{Rank: 1, Suit: Diamonds}) {
		t.Fatalf("SortedDescending mutated its input")
	}
}
