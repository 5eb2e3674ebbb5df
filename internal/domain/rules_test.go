package domain

import "testing"

func TestCanPlace_EmptyPileNeverAccepts(t *testing.T) {
	for _, c := range DefaultDeck() {
		if CanPlace(nil, c) {
			t.Fatalf("CanPlace(empty, %v) = true, want false", c)
		}
		if CanPlace([]Card{}, c) {
			t.Fatalf("CanPlace([], %v) = true, want false", c)
		}
	}
}

func TestCanPlace_AllSuitPairs(t *testing.T) {
	for _, topSuit := range DefaultSuits {
		for _, cardSuit := range DefaultSuits {
			for topRank := 1; topRank <= King; topRank++ {
				for cardRank := 1; cardRank <= King; cardRank++ {
					pile := []Card{{Rank: topRank, Suit: topSuit}}
					card := Card{Rank: cardRank, Suit: cardSuit}

					want := topRank == cardRank+1 && topSuit.Color() != cardSuit.Color()
					if got := CanPlace(pile, card); got != want {
						t.Fatalf("CanPlace(%v, %v) = %v, want %v", pile, card, got, want)
					}
				}
			}
		}
	}
}

func TestCanPlace_UsesTopCard(t *testing.T) {
	pile := []Card{{Rank: 9, Suit: Spades}, {Rank: 8, Suit: Hearts}}

	if !CanPlace(pile, Card{Rank: 7, Suit: Clubs}) {
		t.Fatalf("7 of clubs should stack on 8 of hearts")
	}
	if CanPlace(pile, Card{Rank: 8, Suit: Diamonds}) {
		t.Fatalf("8 of diamonds must not stack on the bottom 9 of spades")
	}
}

func TestCanPlace_Scenarios(t *testing.T) {
	pile := []Card{{Rank: 5, Suit: Hearts}}
	tests := []struct {
		name string
		card Card
		want bool
	}{
		{name: "red five takes black four", card: Card{Rank: 4, Suit: Spades}, want: true},
		{name: "same color rejected", card: Card{Rank: 4, Suit: Diamonds}, want: false},
		{name: "rank gap of two rejected", card: Card{Rank: 3, Suit: Spades}, want: false},
		{name: "higher rank rejected", card: Card{Rank: 6, Suit: Clubs}, want: false},
		{name: "equal rank rejected", card: Card{Rank: 5, Suit: Clubs}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPlace(pile, tt.card); got != tt.want {
				t.Fatalf("CanPlace(5H, %v) = %v, want %v", tt.card, got, tt.want)
			}
		})
	}
}

func TestCanStartCorner_OnlyKings(t *testing.T) {
	for _, c := range DefaultDeck() {
		want := c.Rank == King
		if got := CanStartCorner(nil, c); got != want {
			t.Fatalf("CanStartCorner(empty, %v) = %v, want %v", c, got, want)
		}
	}

	occupied := []Card{{Rank: King, Suit: Spades}}
	if CanStartCorner(occupied, Card{Rank: King, Suit: Hearts}) {
		t.Fatalf("a King must not start an occupied corner")
	}
}

func TestAcceptsOnFoundation(t *testing.T) {
	if !AcceptsOnFoundation(nil, Card{Rank: 2, Suit: Clubs}) {
		t.Fatalf("any card should start an empty foundation")
	}
	if AcceptsOnFoundation([]Card{{Rank: 2, Suit: Clubs}}, Card{Rank: 3, Suit: Hearts}) {
		t.Fatalf("ascending placement should be rejected")
	}
}

func TestSuitColor(t *testing.T) {
	tests := []struct {
		suit Suit
		want Color
	}{
		{Hearts, Red},
		{Diamonds, Red},
		{Clubs, Black},
		{Spades, Black},
		{Suit("stars"), ColorNone},
	}
	for _, tt := range tests {
		if got := tt.suit.Color(); got != tt.want {
			t.Errorf("%s.Color() = %v, want %v", tt.suit, got, tt.want)
		}
	}
}

func TestAcceptsOnCorner(t *testing.T) {
	king := Card{Rank: King, Suit: Spades}
	tests := []struct {
		name string
		pile []Card
		card Card
		want bool
	}{
		{"king starts empty corner", nil, king, true},
		{"queen cannot start corner", nil, Card{Rank: 12, Suit: Hearts}, false},
		{"queen continues started corner", []Card{king}, Card{Rank: 12, Suit: Hearts}, true},
		{"same color rejected", []Card{king}, Card{Rank: 12, Suit: Clubs}, false},
		{"king cannot cover king", []Card{king}, Card{Rank: King, Suit: Hearts}, false},
	}
	for _, tt := range tests {
		if got := AcceptsOnCorner(tt.pile, tt.card); got != tt.want {
			t.Fatalf("%s: AcceptsOnCorner() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
