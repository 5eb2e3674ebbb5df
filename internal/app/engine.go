package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kingscorner/internal/domain"
)

// Result summarises a finished game.
type Result struct {
	Winner    int // -1 on stalemate
	Stalemate bool
	Turns     int
}

// Engine runs the draw-then-move turn loop until the game is over.
type Engine struct {
	svc        *Service
	game       *domain.Game
	strategies []Strategy
	sink       EventSink
	logger     *zap.Logger
}

// NewEngine binds one strategy to each seat of game. sink may be nil.
func NewEngine(svc *Service, game *domain.Game, strategies []Strategy, sink EventSink) (*Engine, error) {
	if len(strategies) != len(game.Players) {
		return nil, fmt.Errorf("%w: %d strategies for %d players", ErrStrategyMissing, len(strategies), len(game.Players))
	}
	for seat, st := range strategies {
		if st == nil {
			return nil, fmt.Errorf("%w: seat %d", ErrStrategyMissing, seat)
		}
	}
	return &Engine{
		svc:        svc,
		game:       game,
		strategies: strategies,
		sink:       sink,
		logger:     svc.logger.With(zap.String("game_id", game.ID)),
	}, nil
}

// Announce publishes events produced outside the loop, such as those from StartGame.
func (e *Engine) Announce(events []Event) error {
	if e.sink == nil {
		return nil
	}
	for _, ev := range events {
		if err := e.sink.Publish(ev); err != nil {
			return fmt.Errorf("publish %s: %w", ev.Kind, err)
		}
	}
	return nil
}

// Run plays turns until a hand empties or the game stalls.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	for e.game.Phase != domain.PhaseGameOver {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := e.playTurn(ctx); err != nil {
			return Result{}, err
		}
	}
	return Result{Winner: e.game.Winner, Stalemate: e.game.Stalemate, Turns: e.game.Turns}, nil
}

func (e *Engine) playTurn(ctx context.Context) error {
	events, err := e.svc.Draw(e.game)
	if err != nil {
		return err
	}
	if err := e.Announce(events); err != nil {
		return err
	}

	pl := e.game.CurrentPlayer()
	st := e.strategies[pl.Seat]
	turn := NewTurn(e.game, pl, e.sink, e.logger)

	if err := st.PlayTurn(ctx, turn); err != nil {
		return fmt.Errorf("seat %d (%s): %w", pl.Seat, st.Name(), err)
	}
	if err := turn.Err(); err != nil {
		return fmt.Errorf("publish move: %w", err)
	}
	if got := e.game.CardCount(); got != e.game.CardTotal {
		e.logger.Error("card count mismatch", zap.Int("got", got), zap.Int("want", e.game.CardTotal))
		return fmt.Errorf("%w: %d cards in play, want %d", ErrCardCountMismatch, got, e.game.CardTotal)
	}

	e.logger.Debug("turn finished",
		zap.Int("player", pl.Seat),
		zap.String("strategy", st.Name()),
		zap.Int("moves", turn.Moves()),
		zap.Int("hand", len(pl.Hand)))

	events, err = e.svc.EndTurn(e.game, turn.Moves())
	if err != nil {
		return err
	}
	return e.Announce(events)
}
