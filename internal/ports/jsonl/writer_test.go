package jsonl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"kingscorner/internal/app"
	"kingscorner/internal/domain"
	"kingscorner/internal/ports/console"
)

func card(rank int, suit domain.Suit) domain.Card { return domain.Card{Rank: rank, Suit: suit} }

// records decodes every line written to buf.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		st := &structpb.Struct{}
		require.NoError(t, protojson.Unmarshal([]byte(line), st), "line %q", line)
		out = append(out, st.AsMap())
	}
	return out
}

func TestPublish_OneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	table := domain.NewTable([]domain.Card{card(9, domain.Hearts)})
	table.Corners[0] = []domain.Card{card(domain.King, domain.Clubs)}

	require.NoError(t, w.Publish(app.Event{
		Kind:       app.EventHandDealt,
		GameID:     "g1",
		Payload:    app.HandDealtPayload{Seat: 1, Hand: []domain.Card{card(3, domain.Clubs)}},
		Recipients: []int{1},
	}))
	require.NoError(t, w.Publish(app.Event{
		Kind:    app.EventMoveApplied,
		GameID:  "g1",
		Payload: app.MoveAppliedPayload{Seat: 1, Move: domain.Move{From: domain.HandSlot(0), To: domain.Corner(0), Card: card(12, domain.Hearts)}},
	}))
	require.NoError(t, w.Publish(app.Event{
		Kind:    app.EventGameEnded,
		GameID:  "g1",
		Payload: app.GameEndedPayload{Winner: -1, Stalemate: true, Turns: 12, Table: table},
	}))

	recs := records(t, &buf)
	require.Len(t, recs, 3)

	assert.Equal(t, "hand_dealt", recs[0]["kind"])
	assert.Equal(t, "g1", recs[0]["game_id"])
	assert.Equal(t, []any{float64(1)}, recs[0]["recipients"])
	assert.Equal(t, map[string]any{
		"seat": float64(1),
		"hand": []any{map[string]any{"rank": float64(3), "suit": "clubs"}},
	}, recs[0]["payload"])

	move := recs[1]["payload"].(map[string]any)["move"]
	assert.Equal(t, map[string]any{
		"from": "H8",
		"to":   "C4",
		"card": map[string]any{"rank": float64(12), "suit": "hearts"},
	}, move)
	_, broadcast := recs[1]["recipients"]
	assert.False(t, broadcast)

	ended := recs[2]["payload"].(map[string]any)
	assert.Equal(t, float64(-1), ended["winner"])
	assert.Equal(t, true, ended["stalemate"])
	tbl := ended["table"].(map[string]any)
	assert.Len(t, tbl["foundations"], 4)
	assert.Equal(t, []any{map[string]any{"rank": float64(9), "suit": "hearts"}}, tbl["foundations"].([]any)[0])
	assert.Equal(t, []any{map[string]any{"rank": float64(13), "suit": "clubs"}}, tbl["corners"].([]any)[0])
	assert.Equal(t, []any{}, tbl["corners"].([]any)[1])
}

func TestDisplayRecords(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	require.NoError(t, w.Status("Illegal move, try again!"))
	require.NoError(t, w.ShowHand([]domain.Card{card(2, domain.Clubs), card(domain.King, domain.Spades)}))
	require.NoError(t, w.ShowTable(&domain.Table{}))

	recs := records(t, &buf)
	require.Len(t, recs, 3)
	assert.Equal(t, map[string]any{"kind": "status", "message": "Illegal move, try again!"}, recs[0])
	assert.Equal(t, []any{
		map[string]any{"rank": float64(13), "suit": "spades"},
		map[string]any{"rank": float64(2), "suit": "clubs"},
	}, recs[1]["hand"])
	assert.Equal(t, "table", recs[2]["kind"])
}

func TestPromptedInput(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	in := w.Prompted(console.New(strings.NewReader("8 0\n"), &buf))

	line, err := in.ReadLine(context.Background(), "Your move? ")
	require.NoError(t, err)
	assert.Equal(t, "8 0", line)

	recs := records(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, map[string]any{"kind": "prompt", "message": "Your move? "}, recs[0])
}
