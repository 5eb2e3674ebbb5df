package strategy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kingscorner/internal/domain"
)

// ErrMalformedInput covers unparsable commands and out-of-range indexes.
var ErrMalformedInput = errors.New("malformed input")

const (
	// EndTurnToken ends the interactive turn.
	EndTurnToken = "."
	// RefreshToken redisplays the table and hand without acting.
	RefreshToken = "/"
)

// CommandKind classifies a line of interactive input.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandEndTurn
	CommandRefresh
)

// Command is a parsed line of interactive input. Src and Dst are display
// indexes: 0-3 foundations, 4-7 corners, 8 and up the displayed hand.
type Command struct {
	Kind CommandKind
	Src  int
	Dst  int
}

// ParseCommand parses "src dst", "." or "/".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 {
		switch fields[0] {
		case EndTurnToken:
			return Command{Kind: CommandEndTurn}, nil
		case RefreshToken:
			return Command{Kind: CommandRefresh}, nil
		}
	}
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: want two indexes, got %q", ErrMalformedInput, line)
	}

	src, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("%w: source %q is not a number", ErrMalformedInput, fields[0])
	}
	dst, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: destination %q is not a number", ErrMalformedInput, fields[1])
	}
	return Command{Kind: CommandMove, Src: src, Dst: dst}, nil
}

// Move resolves the command's indexes against the hand as it was displayed.
func (c Command) Move(displayed []domain.Card) (domain.Move, error) {
	from, err := domain.LocationForIndex(c.Src, len(displayed))
	if err != nil {
		return domain.Move{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	to, err := domain.LocationForIndex(c.Dst, len(displayed))
	if err != nil {
		return domain.Move{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	m := domain.Move{From: from, To: to}
	if from.Kind == domain.KindHand {
		m.Card = displayed[from.Index]
	}
	return m, nil
}
