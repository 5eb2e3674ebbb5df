package domain

import "fmt"

const (
	FoundationCount = 4
	CornerCount     = 4
)

// Table holds the shared piles. The last card of each slice is the top.
type Table struct {
	Foundations [FoundationCount][]Card
	Corners     [CornerCount][]Card
}

// NewTable seeds one card onto each foundation pile in order.
func NewTable(seeds []Card) *Table {
	t := &Table{}
	for i := 0; i < FoundationCount && i < len(seeds); i++ {
		t.Foundations[i] = []Card{seeds[i]}
	}
	return t
}

// Locations lists every pile in display order: F0-F3 then C4-C7.
func (t *Table) Locations() []Location {
	locs := make([]Location, 0, FoundationCount+CornerCount)
	locs = append(locs, FoundationLocations()...)
	return append(locs, CornerLocations()...)
}

// FoundationLocations lists the four foundation piles.
func FoundationLocations() []Location {
	locs := make([]Location, FoundationCount)
	for i := range locs {
		locs[i] = Foundation(i)
	}
	return locs
}

// CornerLocations lists the four corner piles.
func CornerLocations() []Location {
	locs := make([]Location, CornerCount)
	for i := range locs {
		locs[i] = Corner(i)
	}
	return locs
}

func (t *Table) slot(loc Location) (*[]Card, error) {
	switch loc.Kind {
	case KindFoundation:
		if loc.Index < 0 || loc.Index >= FoundationCount {
			return nil, fmt.Errorf("%w: foundation %d", ErrIndexOutOfRange, loc.Index)
		}
		return &t.Foundations[loc.Index], nil
	case KindCorner:
		if loc.Index < 0 || loc.Index >= CornerCount {
			return nil, fmt.Errorf("%w: corner %d", ErrIndexOutOfRange, loc.Index)
		}
		return &t.Corners[loc.Index], nil
	default:
		return nil, fmt.Errorf("%w: %s is not a table pile", ErrIllegalMove, loc)
	}
}

// Pile returns a copy of the pile at loc, bottom first. Non-table locations yield nil.
func (t *Table) Pile(loc Location) []Card {
	p, err := t.slot(loc)
	if err != nil || len(*p) == 0 {
		return nil
	}
	return append([]Card(nil), (*p)...)
}

// IsEmpty reports whether the pile at loc holds no cards.
func (t *Table) IsEmpty(loc Location) bool {
	p, err := t.slot(loc)
	return err != nil || len(*p) == 0
}

// Top returns the last card placed on the pile.
func (t *Table) Top(loc Location) (Card, bool) {
	p, err := t.slot(loc)
	if err != nil || len(*p) == 0 {
		return Card{}, false
	}
	return (*p)[len(*p)-1], true
}

// Bottom returns the card that started the pile.
func (t *Table) Bottom(loc Location) (Card, bool) {
	p, err := t.slot(loc)
	if err != nil || len(*p) == 0 {
		return Card{}, false
	}
	return (*p)[0], true
}

// PlaceOnFoundation puts card on foundation i if it starts an empty pile or stacks legally.
func (t *Table) PlaceOnFoundation(i int, card Card) error {
	p, err := t.slot(Foundation(i))
	if err != nil {
		return err
	}
	if !AcceptsOnFoundation(*p, card) {
		return fmt.Errorf("%w: %v onto %s", ErrIllegalMove, card, Foundation(i))
	}
	*p = append(*p, card)
	return nil
}

// PlaceOnCorner puts card on corner i. An empty corner takes only a King.
func (t *Table) PlaceOnCorner(i int, card Card) error {
	p, err := t.slot(Corner(i))
	if err != nil {
		return err
	}
	if !AcceptsOnCorner(*p, card) {
		return fmt.Errorf("%w: %v onto %s", ErrIllegalMove, card, Corner(i))
	}
	*p = append(*p, card)
	return nil
}

// MovePile moves the whole foundation pile at from onto the pile at to,
// keeping its order. The destination's top must accept the source's bottom
// card. The source is left empty. Nothing changes on error.
func (t *Table) MovePile(from, to Location) error {
	if from.Kind != KindFoundation {
		return fmt.Errorf("%w: only foundation piles move, not %s", ErrIllegalMove, from)
	}
	if from == to {
		return fmt.Errorf("%w: %s onto itself", ErrIllegalMove, from)
	}
	src, err := t.slot(from)
	if err != nil {
		return err
	}
	dst, err := t.slot(to)
	if err != nil {
		return err
	}
	if len(*src) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyPile, from)
	}
	if !CanPlace(*dst, (*src)[0]) {
		return fmt.Errorf("%w: %s onto %s", ErrIllegalMove, from, to)
	}

	*dst = append(*dst, (*src)...)
	*src = nil
	return nil
}

// EmptyFoundation returns the first empty foundation pile, if any.
func (t *Table) EmptyFoundation() (Location, bool) {
	return t.firstEmpty(FoundationLocations())
}

// EmptyCorner returns the first empty corner pile, if any.
func (t *Table) EmptyCorner() (Location, bool) {
	return t.firstEmpty(CornerLocations())
}

func (t *Table) firstEmpty(locs []Location) (Location, bool) {
	for _, loc := range locs {
		if t.IsEmpty(loc) {
			return loc, true
		}
	}
	return Location{}, false
}

// CardCount returns the number of cards on the table.
func (t *Table) CardCount() int {
	n := 0
	for _, p := range t.Foundations {
		n += len(p)
	}
	for _, p := range t.Corners {
		n += len(p)
	}
	return n
}

// Clone returns a deep copy, safe to hand to renderers.
func (t *Table) Clone() *Table {
	out := &Table{}
	for i, p := range t.Foundations {
		out.Foundations[i] = append([]Card(nil), p...)
	}
	for i, p := range t.Corners {
		out.Corners[i] = append([]Card(nil), p...)
	}
	return out
}
