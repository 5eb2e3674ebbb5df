package jsonl

import (
	"kingscorner/internal/app"
	"kingscorner/internal/domain"
)

// Values built here are limited to the types structpb.NewValue accepts.

func cardValue(c domain.Card) map[string]any {
	return map[string]any{
		"rank": c.Rank,
		"suit": string(c.Suit),
	}
}

func cardsValue(cards []domain.Card) []any {
	out := make([]any, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardValue(c))
	}
	return out
}

func tableValue(t *domain.Table) map[string]any {
	if t == nil {
		return nil
	}
	foundations := make([]any, 0, domain.FoundationCount)
	for _, loc := range domain.FoundationLocations() {
		foundations = append(foundations, cardsValue(t.Pile(loc)))
	}
	corners := make([]any, 0, domain.CornerCount)
	for _, loc := range domain.CornerLocations() {
		corners = append(corners, cardsValue(t.Pile(loc)))
	}
	return map[string]any{
		"foundations": foundations,
		"corners":     corners,
	}
}

func moveValue(m domain.Move) map[string]any {
	out := map[string]any{
		"from": m.From.String(),
		"to":   m.To.String(),
	}
	if m.FromHand() {
		out["card"] = cardValue(m.Card)
	}
	return out
}

func intsValue(xs []int) []any {
	out := make([]any, 0, len(xs))
	for _, x := range xs {
		out = append(out, x)
	}
	return out
}

func payloadValue(payload any) map[string]any {
	switch p := payload.(type) {
	case app.GameStartedPayload:
		return map[string]any{
			"players":    p.Players,
			"first_seat": p.FirstSeat,
			"deck_size":  p.DeckSize,
		}
	case app.HandDealtPayload:
		return map[string]any{
			"seat": p.Seat,
			"hand": cardsValue(p.Hand),
		}
	case app.TurnStartedPayload:
		return map[string]any{
			"seat":      p.Seat,
			"turn":      p.Turn,
			"hand_size": p.HandSize,
			"deck_size": p.DeckSize,
			"table":     tableValue(p.Table),
		}
	case app.CardDrawnPayload:
		return map[string]any{
			"seat": p.Seat,
			"card": cardValue(p.Card),
		}
	case app.MoveAppliedPayload:
		return map[string]any{
			"seat":          p.Seat,
			"move":          moveValue(p.Move),
			"consolidation": p.Consolidation,
		}
	case app.TurnEndedPayload:
		return map[string]any{
			"seat":      p.Seat,
			"moves":     p.Moves,
			"hand_size": p.HandSize,
		}
	case app.GameEndedPayload:
		return map[string]any{
			"winner":    p.Winner,
			"stalemate": p.Stalemate,
			"turns":     p.Turns,
			"table":     tableValue(p.Table),
		}
	default:
		return nil
	}
}
