package strategy

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"kingscorner/internal/app"
	"kingscorner/internal/domain"
	"kingscorner/internal/ports"
)

const (
	Instructions = `Enter your move as "src dst": press "/" to refresh display; "." when done`
	Prompt       = "Your move? "

	MsgIllegalMove = "Illegal move, try again!"
	MsgEndOfTurn   = "Finished move, next player's turn!"
	MsgInputClosed = "Input closed; playing automatically."
)

// Interactive reads move commands from a player until they end the turn.
// Once the input is exhausted the seat is played by the heuristic.
type Interactive struct {
	in       ports.InputPort
	out      ports.DisplayPort
	logger   *zap.Logger
	fallback *Heuristic
	closed   bool
}

// NewInteractive builds the interactive strategy over an input and a display.
func NewInteractive(in ports.InputPort, out ports.DisplayPort, logger *zap.Logger) *Interactive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactive{in: in, out: out, logger: logger, fallback: NewHeuristic(logger)}
}

func (s *Interactive) Name() string { return string(KindInteractive) }

func (s *Interactive) PlayTurn(ctx context.Context, turn *app.Turn) error {
	if s.closed {
		return s.fallback.PlayTurn(ctx, turn)
	}
	if err := s.out.Status(Instructions); err != nil {
		return err
	}
	if err := s.out.ShowTable(turn.Table()); err != nil {
		return err
	}

	for !turn.Done() {
		displayed := domain.SortedDescending(turn.Hand())
		if err := s.out.ShowHand(displayed); err != nil {
			return err
		}

		line, err := s.in.ReadLine(ctx, Prompt)
		if errors.Is(err, io.EOF) {
			s.logger.Info("input closed, switching to heuristic", zap.Int("player", turn.Seat()))
			s.closed = true
			if err := s.out.Status(MsgInputClosed); err != nil {
				return err
			}
			return s.fallback.PlayTurn(ctx, turn)
		}
		if err != nil {
			return err
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			s.logger.Warn("malformed input", zap.Int("player", turn.Seat()), zap.Error(err))
			if err := s.out.Status(malformed(line)); err != nil {
				return err
			}
			continue
		}

		switch cmd.Kind {
		case CommandEndTurn:
			return s.out.Status(MsgEndOfTurn)
		case CommandRefresh:
			if err := s.out.ShowTable(turn.Table()); err != nil {
				return err
			}
			continue
		}

		move, err := cmd.Move(displayed)
		if err != nil {
			s.logger.Warn("malformed input", zap.Int("player", turn.Seat()), zap.Error(err))
			if err := s.out.Status(malformed(line)); err != nil {
				return err
			}
			continue
		}
		if err := turn.Apply(move); err != nil {
			s.logger.Warn("illegal move", zap.Int("player", turn.Seat()), zap.String("input", line), zap.Error(err))
			if err := s.out.Status(MsgIllegalMove); err != nil {
				return err
			}
			continue
		}
		if err := s.out.ShowTable(turn.Table()); err != nil {
			return err
		}
	}
	return nil
}

func malformed(line string) string {
	return fmt.Sprintf("Ill-formed move %s", line)
}
