package domain

// Consolidate merges table piles without touching any hand. Every ordered
// pair of distinct foundation piles is tried first, then every foundation
// onto every corner. A source moves when the destination's top accepts the
// source's bottom card. Each pair is checked once per call, so a merge that
// becomes possible only after a later merge waits for the next call.
// It returns the pile moves it made, in order.
func Consolidate(t *Table) []Move {
	var moves []Move
	moves = append(moves, mergeInto(t, FoundationLocations())...)
	moves = append(moves, mergeInto(t, CornerLocations())...)
	return moves
}

func mergeInto(t *Table, dsts []Location) []Move {
	var moves []Move
	for _, dst := range dsts {
		if t.IsEmpty(dst) {
			continue
		}
		for _, src := range FoundationLocations() {
			if src == dst || t.IsEmpty(src) {
				continue
			}
			if err := t.MovePile(src, dst); err == nil {
				moves = append(moves, Move{From: src, To: dst})
			}
		}
	}
	return moves
}
