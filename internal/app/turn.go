package app

import (
	"context"

	"go.uber.org/zap"

	"kingscorner/internal/domain"
)

// Strategy decides the moves for one seat.
type Strategy interface {
	Name() string
	// PlayTurn applies zero or more moves through turn and returns when the
	// player is done. Illegal moves are reported by turn.Apply and are not
	// fatal; a returned error aborts the game.
	PlayTurn(ctx context.Context, turn *Turn) error
}

// Turn is a strategy's handle on the table and its own hand for the
// duration of one turn. All mutations go through Apply and Consolidate so
// every move is validated, applied atomically and published.
type Turn struct {
	game   *domain.Game
	player *domain.Player
	sink   EventSink
	logger *zap.Logger

	moves int
	err   error
}

// NewTurn opens a turn for player. sink and logger may be nil.
func NewTurn(game *domain.Game, player *domain.Player, sink EventSink, logger *zap.Logger) *Turn {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Turn{
		game:   game,
		player: player,
		sink:   sink,
		logger: logger.With(zap.Int("player", player.Seat)),
	}
}

// Seat returns the active player's seat.
func (t *Turn) Seat() int { return t.player.Seat }

// Table exposes the shared table for reading. Mutate it only through Apply.
func (t *Turn) Table() *domain.Table { return t.game.Table }

// Hand returns a copy of the active player's hand in its current order.
func (t *Turn) Hand() []domain.Card {
	return append([]domain.Card(nil), t.player.Hand...)
}

// DeckSize returns the number of cards left to draw.
func (t *Turn) DeckSize() int { return len(t.game.Deck) }

// Moves returns how many moves were applied so far this turn.
func (t *Turn) Moves() int { return t.moves }

// Done reports whether the player has emptied their hand.
func (t *Turn) Done() bool { return len(t.player.Hand) == 0 }

// Apply validates and performs m. On error the table and hand are unchanged.
func (t *Turn) Apply(m domain.Move) error {
	hand, err := domain.ApplyMove(t.game.Table, t.player.Hand, m)
	if err != nil {
		t.logger.Debug("move rejected", zap.Stringer("move", m), zap.Error(err))
		return err
	}
	t.player.Hand = hand
	t.record(m, false)
	return nil
}

// Consolidate runs one consolidation pass over the table and records its merges.
func (t *Turn) Consolidate() []domain.Move {
	moves := domain.Consolidate(t.game.Table)
	for _, m := range moves {
		t.record(m, true)
	}
	return moves
}

// Err returns the first error raised while publishing this turn's events.
func (t *Turn) Err() error { return t.err }

func (t *Turn) record(m domain.Move, consolidation bool) {
	t.moves++
	t.logger.Debug("move applied",
		zap.Stringer("move", m),
		zap.Bool("consolidation", consolidation),
		zap.Int("hand", len(t.player.Hand)))

	if t.sink == nil || t.err != nil {
		return
	}
	t.err = t.sink.Publish(Event{
		Kind:    EventMoveApplied,
		GameID:  t.game.ID,
		Payload: MoveAppliedPayload{Seat: t.player.Seat, Move: m, Consolidation: consolidation},
	})
}
