package strategy

import (
	"context"

	"go.uber.org/zap"

	"kingscorner/internal/app"
	"kingscorner/internal/domain"
)

// Heuristic is the automatic player: consolidate the table, then try each
// hand card from highest to lowest rank against the placement rules, and
// repeat while the previous pass placed anything.
type Heuristic struct {
	rules  []PlacementRule
	logger *zap.Logger
}

// NewHeuristic builds the automatic strategy. With no rules it uses DefaultRules.
func NewHeuristic(logger *zap.Logger, rules ...PlacementRule) *Heuristic {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Heuristic{rules: rules, logger: logger}
}

func (h *Heuristic) Name() string { return string(KindHeuristic) }

func (h *Heuristic) PlayTurn(ctx context.Context, turn *app.Turn) error {
	for pass := 1; ; pass++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		merged := turn.Consolidate()

		// Iterate a sorted snapshot; placed cards leave the live hand only.
		placed := 0
		for slot, c := range domain.SortedDescending(turn.Hand()) {
			rule, ok := placeCard(turn, h.rules, slot, c)
			if !ok {
				continue
			}
			placed++
			h.logger.Debug("card placed",
				zap.Int("player", turn.Seat()),
				zap.Int("pass", pass),
				zap.String("rule", rule),
				zap.Int("rank", c.Rank),
				zap.String("suit", string(c.Suit)))
		}

		if placed == 0 || turn.Done() {
			h.logger.Debug("heuristic done",
				zap.Int("player", turn.Seat()),
				zap.Int("passes", pass),
				zap.Int("merged", len(merged)),
				zap.Int("moves", turn.Moves()))
			return nil
		}
	}
}
