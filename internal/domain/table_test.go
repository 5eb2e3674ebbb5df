package domain

import (
	"errors"
	"reflect"
	"testing"
)

func card(rank int, suit Suit) Card { return Card{Rank: rank, Suit: suit} }

func TestNewTable_SeedsFoundations(t *testing.T) {
	seeds := []Card{card(9, Hearts), card(2, Diamonds), card(7, Hearts), card(8, Hearts)}
	table := NewTable(seeds)

	for i, want := range seeds {
		if got := table.Pile(Foundation(i)); !reflect.DeepEqual(got, []Card{want}) {
			t.Fatalf("F%d = %v, want [%v]", i, got, want)
		}
	}
	for _, loc := range CornerLocations() {
		if !table.IsEmpty(loc) {
			t.Fatalf("%s should start empty", loc)
		}
	}
	if table.CardCount() != 4 {
		t.Fatalf("CardCount() = %d, want 4", table.CardCount())
	}
}

func TestPlaceOnFoundation(t *testing.T) {
	table := &Table{}
	table.Foundations[0] = []Card{card(5, Hearts)}

	if err := table.PlaceOnFoundation(0, card(4, Spades)); err != nil {
		t.Fatalf("legal placement failed: %v", err)
	}
	if err := table.PlaceOnFoundation(0, card(3, Hearts)); err != nil {
		t.Fatalf("legal placement failed: %v", err)
	}
	if err := table.PlaceOnFoundation(0, card(2, Diamonds)); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("same-color placement err = %v, want ErrIllegalMove", err)
	}
	if got := len(table.Foundations[0]); got != 3 {
		t.Fatalf("F0 size = %d, want 3", got)
	}

	if err := table.PlaceOnFoundation(1, card(2, Diamonds)); err != nil {
		t.Fatalf("any card should start an empty foundation: %v", err)
	}
	if err := table.PlaceOnFoundation(4, card(2, Clubs)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("out-of-range foundation err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestPlaceOnCorner(t *testing.T) {
	table := &Table{}

	for rank := 1; rank < King; rank++ {
		if err := table.PlaceOnCorner(0, card(rank, Clubs)); !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("rank %d on empty corner err = %v, want ErrIllegalMove", rank, err)
		}
	}
	if err := table.PlaceOnCorner(0, card(King, Diamonds)); err != nil {
		t.Fatalf("King should start an empty corner: %v", err)
	}
	if err := table.PlaceOnCorner(0, card(King, Hearts)); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("second King on corner err = %v, want ErrIllegalMove", err)
	}
	if err := table.PlaceOnCorner(0, card(12, Spades)); err != nil {
		t.Fatalf("queen should stack on the King: %v", err)
	}
	if top, _ := table.Top(Corner(0)); top != card(12, Spades) {
		t.Fatalf("C4 top = %v, want queen of spades", top)
	}
}

func TestMovePile(t *testing.T) {
	table := &Table{}
	table.Foundations[0] = []Card{card(8, Spades)}
	table.Foundations[1] = []Card{card(7, Hearts), card(6, Clubs)}

	if err := table.MovePile(Foundation(1), Foundation(0)); err != nil {
		t.Fatalf("MovePile failed: %v", err)
	}
	want := []Card{card(8, Spades), card(7, Hearts), card(6, Clubs)}
	if got := table.Pile(Foundation(0)); !reflect.DeepEqual(got, want) {
		t.Fatalf("F0 = %v, want %v", got, want)
	}
	if !table.IsEmpty(Foundation(1)) {
		t.Fatalf("source pile should be empty after the move")
	}
}

func TestMovePile_RejectsWithoutChange(t *testing.T) {
	tests := []struct {
		name    string
		from    Location
		to      Location
		wantErr error
	}{
		{name: "incompatible bottom", from: Foundation(1), to: Foundation(0), wantErr: ErrIllegalMove},
		{name: "onto itself", from: Foundation(0), to: Foundation(0), wantErr: ErrIllegalMove},
		{name: "empty source", from: Foundation(2), to: Foundation(0), wantErr: ErrEmptyPile},
		{name: "onto empty corner", from: Foundation(0), to: Corner(0), wantErr: ErrIllegalMove},
		{name: "from corner", from: Corner(1), to: Foundation(0), wantErr: ErrIllegalMove},
		{name: "onto hand", from: Foundation(0), to: HandSlot(0), wantErr: ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{}
			table.Foundations[0] = []Card{card(8, Spades)}
			table.Foundations[1] = []Card{card(7, Clubs)}
			table.Corners[1] = []Card{card(King, Hearts)}
			before := table.Clone()

			if err := table.MovePile(tt.from, tt.to); !errors.Is(err, tt.wantErr) {
				t.Fatalf("MovePile() err = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(table, before) {
				t.Fatalf("table changed on failed move: %+v", table)
			}
		})
	}
}

func TestTopAndBottom(t *testing.T) {
	table := &Table{}
	table.Foundations[3] = []Card{card(10, Clubs), card(9, Diamonds)}

	if b, ok := table.Bottom(Foundation(3)); !ok || b != card(10, Clubs) {
		t.Fatalf("Bottom() = %v, %v", b, ok)
	}
	if top, ok := table.Top(Foundation(3)); !ok || top != card(9, Diamonds) {
		t.Fatalf("Top() = %v, %v", top, ok)
	}
	if _, ok := table.Top(Foundation(0)); ok {
		t.Fatalf("Top() on empty pile should report false")
	}
}

func TestEmptyPiles(t *testing.T) {
	table := NewTable([]Card{card(1, Spades), card(2, Spades), card(3, Spades), card(4, Spades)})
	if _, ok := table.EmptyFoundation(); ok {
		t.Fatalf("seeded table has no empty foundation")
	}
	if loc, ok := table.EmptyCorner(); !ok || loc != Corner(0) {
		t.Fatalf("EmptyCorner() = %v, %v, want C4", loc, ok)
	}

	table.Foundations[2] = nil
	if loc, ok := table.EmptyFoundation(); !ok || loc != Foundation(2) {
		t.Fatalf("EmptyFoundation() = %v, %v, want F2", loc, ok)
	}
}

func TestClone_IsDeep(t *testing.T) {
	table := NewTable([]Card{card(5, Spades)})
	clone := table.Clone()
	clone.Foundations[0][0] = card(6, Hearts)

	if table.Foundations[0][0] != card(5, Spades) {
		t.Fatalf("Clone shares pile storage with the original")
	}
}
