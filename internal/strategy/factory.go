package strategy

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"kingscorner/internal/app"
	"kingscorner/internal/ports"
)

// Kind names a move strategy.
type Kind string

const (
	KindHeuristic   Kind = "heuristic"
	KindInteractive Kind = "interactive"
)

var (
	ErrUnknownKind = errors.New("unknown strategy")
	ErrNoInput     = errors.New("interactive strategy needs an input and a display")
)

// Deps carries what strategies may need. Input and Display are only used
// by the interactive strategy.
type Deps struct {
	Input   ports.InputPort
	Display ports.DisplayPort
	Logger  *zap.Logger
}

// New returns the strategy implementation for kind.
func New(kind Kind, deps Deps) (app.Strategy, error) {
	switch kind {
	case KindHeuristic:
		return NewHeuristic(deps.Logger), nil
	case KindInteractive:
		if deps.Input == nil || deps.Display == nil {
			return nil, ErrNoInput
		}
		return NewInteractive(deps.Input, deps.Display, deps.Logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ForSeats assigns the interactive strategy to humanSeat and the heuristic
// to every other seat. A humanSeat outside [0, players) makes every seat automatic.
func ForSeats(players, humanSeat int, deps Deps) ([]app.Strategy, error) {
	out := make([]app.Strategy, players)
	for seat := range out {
		kind := KindHeuristic
		if seat == humanSeat {
			kind = KindInteractive
		}
		st, err := New(kind, deps)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
		out[seat] = st
	}
	return out, nil
}
