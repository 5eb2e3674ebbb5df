package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"kingscorner/internal/app"
	"kingscorner/internal/domain"
)

// Console is the text adapter: it reads commands line by line from an
// io.Reader and writes the table, hands and game narration to an io.Writer.
// It serves as ports.InputPort, ports.DisplayPort and app.EventSink.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// pending carries the result of a read that outlived a cancelled
	// ReadLine; the next call picks it up instead of reading again.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine writes prompt and reads one line. A final line without a newline
// is returned before io.EOF. It returns ctx.Err() as soon as ctx is done,
// even while the underlying reader is blocked.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", err
	}

	if c.pending == nil {
		c.pending = make(chan readResult, 1)
		go c.readLine(c.pending)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-c.pending:
		c.pending = nil
		return res.line, res.err
	}
}

func (c *Console) readLine(done chan<- readResult) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		} else {
			line = ""
		}
	}
	done <- readResult{line: strings.TrimRight(line, "\r\n"), err: err}
}

func (c *Console) ShowTable(table *domain.Table) error {
	return c.println(TableText(table))
}

func (c *Console) ShowHand(hand []domain.Card) error {
	return c.println(HandText(hand))
}

func (c *Console) Status(msg string) error {
	return c.println(msg)
}

// Publish narrates public events. Private events such as dealt hands and
// drawn cards are not printed; the interactive player sees them in the hand.
func (c *Console) Publish(ev app.Event) error {
	switch p := ev.Payload.(type) {
	case app.GameStartedPayload:
		return c.println(fmt.Sprintf("Player %d moves first.", p.FirstSeat))
	case app.TurnStartedPayload:
		return c.println(
			"",
			"",
			fmt.Sprintf("Player %d (%d cards) to move.", p.Seat, p.HandSize),
			fmt.Sprintf("Deck has %d cards left.", p.DeckSize),
			TableText(p.Table),
		)
	case app.MoveAppliedPayload:
		return c.println(MoveText(p.Move))
	case app.GameEndedPayload:
		headline := fmt.Sprintf("Player %d wins!", p.Winner)
		if p.Stalemate {
			headline = "No moves remain; the game is a draw."
		}
		return c.println("", "", headline, TableText(p.Table))
	default:
		return nil
	}
}

func (c *Console) println(lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(c.out, l); err != nil {
			return err
		}
	}
	return nil
}
