package domain

// CanPlace reports whether card may go on top of pile: the top card must be
// exactly one rank higher and of the opposite color. An empty pile never
// accepts a card here; starting a pile is decided by CanStartFoundation and
// CanStartCorner.
func CanPlace(pile []Card, card Card) bool {
	if len(pile) == 0 {
		return false
	}
	top := pile[len(pile)-1]
	if top.Rank != card.Rank+1 {
		return false
	}
	return oppositeColors(top.Suit, card.Suit)
}

// CanStartFoundation reports whether card may open a foundation pile.
// Any card may start an empty foundation.
func CanStartFoundation(pile []Card, _ Card) bool {
	return len(pile) == 0
}

// CanStartCorner reports whether card may open a corner pile. Only a King may.
func CanStartCorner(pile []Card, card Card) bool {
	return len(pile) == 0 && card.Rank == King
}

// AcceptsOnFoundation combines the start and stacking rules for a foundation.
func AcceptsOnFoundation(pile []Card, card Card) bool {
	return CanStartFoundation(pile, card) || CanPlace(pile, card)
}

// AcceptsOnCorner combines the start and stacking rules for a corner.
func AcceptsOnCorner(pile []Card, card Card) bool {
	return CanStartCorner(pile, card) || CanPlace(pile, card)
}

func oppositeColors(a, b Suit) bool {
	ca, cb := a.Color(), b.Color()
	if ca == ColorNone || cb == ColorNone {
		return false
	}
	return ca != cb
}
