package strategy

import (
	"kingscorner/internal/app"
	"kingscorner/internal/domain"
)

// PlacementRule proposes a destination pile for a hand card.
type PlacementRule interface {
	Name() string
	Destination(table *domain.Table, card domain.Card) (domain.Location, bool)
}

// KingToCornerRule opens an empty corner pile with a King.
type KingToCornerRule struct{}

func (r KingToCornerRule) Name() string { return "KingToCorner" }

func (r KingToCornerRule) Destination(table *domain.Table, card domain.Card) (domain.Location, bool) {
	if card.Rank != domain.King {
		return domain.Location{}, false
	}
	return table.EmptyCorner()
}

// StackRule stacks the card on the first pile whose top accepts it, corners first.
type StackRule struct{}

func (r StackRule) Name() string { return "Stack" }

func (r StackRule) Destination(table *domain.Table, card domain.Card) (domain.Location, bool) {
	locs := append(domain.CornerLocations(), domain.FoundationLocations()...)
	for _, loc := range locs {
		if domain.CanPlace(table.Pile(loc), card) {
			return loc, true
		}
	}
	return domain.Location{}, false
}

// OpenFoundationRule starts a new pile on the first empty foundation.
type OpenFoundationRule struct{}

func (r OpenFoundationRule) Name() string { return "OpenFoundation" }

func (r OpenFoundationRule) Destination(table *domain.Table, _ domain.Card) (domain.Location, bool) {
	return table.EmptyFoundation()
}

// DefaultRules is the heuristic's rule order.
func DefaultRules() []PlacementRule {
	return []PlacementRule{KingToCornerRule{}, StackRule{}, OpenFoundationRule{}}
}

// placeCard applies the first rule whose destination accepts card and
// returns that rule's name.
func placeCard(turn *app.Turn, rules []PlacementRule, slot int, card domain.Card) (string, bool) {
	for _, r := range rules {
		dst, ok := r.Destination(turn.Table(), card)
		if !ok {
			continue
		}
		if err := turn.Apply(domain.Move{From: domain.HandSlot(slot), To: dst, Card: card}); err != nil {
			continue
		}
		return r.Name(), true
	}
	return "", false
}
