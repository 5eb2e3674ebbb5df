// Package jsonl writes game events and display updates as one JSON object
// per line, for tooling that consumes the game as a stream.
package jsonl

import (
	"context"
	"fmt"
	"io"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"kingscorner/internal/app"
	"kingscorner/internal/domain"
	"kingscorner/internal/ports"
)

// Record kinds written for display updates, next to the app event kinds.
const (
	KindTable  = "table"
	KindHand   = "hand"
	KindStatus = "status"
	KindPrompt = "prompt"
)

// Writer is an app.EventSink and ports.DisplayPort.
type Writer struct {
	mu   sync.Mutex
	out  io.Writer
	opts protojson.MarshalOptions
}

func New(out io.Writer) *Writer {
	return &Writer{
		out:  out,
		opts: protojson.MarshalOptions{EmitUnpopulated: true},
	}
}

func (w *Writer) Publish(ev app.Event) error {
	rec := map[string]any{
		"kind":    string(ev.Kind),
		"game_id": ev.GameID,
		"payload": payloadValue(ev.Payload),
	}
	if len(ev.Recipients) > 0 {
		rec["recipients"] = intsValue(ev.Recipients)
	}
	return w.write(rec)
}

func (w *Writer) ShowTable(table *domain.Table) error {
	return w.write(map[string]any{"kind": KindTable, "table": tableValue(table)})
}

func (w *Writer) ShowHand(hand []domain.Card) error {
	return w.write(map[string]any{"kind": KindHand, "hand": cardsValue(domain.SortedDescending(hand))})
}

func (w *Writer) Status(msg string) error {
	return w.write(map[string]any{"kind": KindStatus, "message": msg})
}

// Prompted wraps an input so each prompt is recorded before reading.
func (w *Writer) Prompted(in ports.InputPort) *PromptedInput {
	return &PromptedInput{w: w, in: in}
}

func (w *Writer) write(rec map[string]any) error {
	st, err := structpb.NewStruct(rec)
	if err != nil {
		return fmt.Errorf("encode %v record: %w", rec["kind"], err)
	}
	b, err := w.opts.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal %v record: %w", rec["kind"], err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.out.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// PromptedInput records the prompt as a JSON line, then reads from the
// wrapped input with an empty prompt so stdout stays line-delimited JSON.
type PromptedInput struct {
	w  *Writer
	in ports.InputPort
}

func (p *PromptedInput) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := p.w.write(map[string]any{"kind": KindPrompt, "message": prompt}); err != nil {
		return "", err
	}
	return p.in.ReadLine(ctx, "")
}
