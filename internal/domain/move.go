package domain

import (
	"fmt"
	"strconv"
)

// LocationKind tags where a move starts or ends.
type LocationKind int

const (
	KindFoundation LocationKind = iota + 1
	KindCorner
	KindHand
)

// HandIndexOffset is the display index of the first hand card.
// Indexes below it address table piles: 0-3 foundations, 4-7 corners.
const HandIndexOffset = FoundationCount + CornerCount

// Location addresses a table pile or a hand slot. Index is zero-based within its kind.
type Location struct {
	Kind  LocationKind
	Index int
}

// Foundation returns the location of foundation pile i.
func Foundation(i int) Location { return Location{Kind: KindFoundation, Index: i} }

// Corner returns the location of corner pile i (0-3, displayed as 4-7).
func Corner(i int) Location { return Location{Kind: KindCorner, Index: i} }

// HandSlot returns the location of the i-th card of a displayed hand.
func HandSlot(i int) Location { return Location{Kind: KindHand, Index: i} }

// LocationForIndex maps a display index onto a location, checking hand bounds.
func LocationForIndex(idx, handSize int) (Location, error) {
	switch {
	case idx < 0:
		return Location{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	case idx < FoundationCount:
		return Foundation(idx), nil
	case idx < HandIndexOffset:
		return Corner(idx - FoundationCount), nil
	case idx-HandIndexOffset < handSize:
		return HandSlot(idx - HandIndexOffset), nil
	default:
		return Location{}, fmt.Errorf("%w: %d (hand has %d cards)", ErrIndexOutOfRange, idx, handSize)
	}
}

// DisplayIndex is the inverse of LocationForIndex.
func (l Location) DisplayIndex() int {
	switch l.Kind {
	case KindCorner:
		return FoundationCount + l.Index
	case KindHand:
		return HandIndexOffset + l.Index
	default:
		return l.Index
	}
}

func (l Location) String() string {
	switch l.Kind {
	case KindFoundation:
		return "F" + strconv.Itoa(l.DisplayIndex())
	case KindCorner:
		return "C" + strconv.Itoa(l.DisplayIndex())
	case KindHand:
		return "H" + strconv.Itoa(l.DisplayIndex())
	default:
		return "?"
	}
}

// Move transfers a hand card or a whole foundation pile onto a table pile.
// Card is the hand card being played; it is ignored for pile moves.
type Move struct {
	From Location
	To   Location
	Card Card
}

// FromHand reports whether the move plays a card out of a hand.
func (m Move) FromHand() bool {
	return m.From.Kind == KindHand
}

func (m Move) String() string {
	if m.FromHand() {
		return m.Card.String() + "->" + m.To.String()
	}
	return m.From.String() + "->" + m.To.String()
}

// ApplyMove validates and performs m. Four kinds of move are legal:
// hand card to foundation, hand card to corner, foundation pile to
// foundation pile and foundation pile to corner pile. It returns the hand
// without the played card. On error neither the table nor the hand changes.
func ApplyMove(t *Table, hand []Card, m Move) ([]Card, error) {
	switch m.From.Kind {
	case KindHand:
		return playFromHand(t, hand, m)
	case KindFoundation:
		if err := t.MovePile(m.From, m.To); err != nil {
			return hand, err
		}
		return hand, nil
	default:
		return hand, fmt.Errorf("%w: cannot move from %s", ErrIllegalMove, m.From)
	}
}

func playFromHand(t *Table, hand []Card, m Move) ([]Card, error) {
	if !ContainsCard(hand, m.Card) {
		return hand, fmt.Errorf("%w: %v", ErrCardNotInHand, m.Card)
	}

	var err error
	switch m.To.Kind {
	case KindFoundation:
		err = t.PlaceOnFoundation(m.To.Index, m.Card)
	case KindCorner:
		err = t.PlaceOnCorner(m.To.Index, m.Card)
	default:
		err = fmt.Errorf("%w: cannot play onto %s", ErrIllegalMove, m.To)
	}
	if err != nil {
		return hand, err
	}

	updated, _ := RemoveCard(hand, m.Card)
	return updated, nil
}

// HasLegalMove reports whether a player holding hand could make any of the
// four legal moves on t.
func HasLegalMove(t *Table, hand []Card) bool {
	for _, c := range hand {
		for i := range t.Foundations {
			if AcceptsOnFoundation(t.Foundations[i], c) {
				return true
			}
		}
		for i := range t.Corners {
			if AcceptsOnCorner(t.Corners[i], c) {
				return true
			}
		}
	}
	for _, src := range FoundationLocations() {
		bottom, ok := t.Bottom(src)
		if !ok {
			continue
		}
		for _, dst := range t.Locations() {
			if dst != src && CanPlace(t.Pile(dst), bottom) {
				return true
			}
		}
	}
	return false
}
