package app

import "kingscorner/internal/domain"

// EventKind identifies emitted game events for display adapters.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventHandDealt   EventKind = "hand_dealt"
	EventTurnStarted EventKind = "turn_started"
	EventCardDrawn   EventKind = "card_drawn"
	EventMoveApplied EventKind = "move_applied"
	EventTurnEnded   EventKind = "turn_ended"
	EventGameEnded   EventKind = "game_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	GameID     string
	Payload    any
	Recipients []int // seats; empty means broadcast
}

// EventSink receives events as the game progresses.
type EventSink interface {
	Publish(ev Event) error
}

type GameStartedPayload struct {
	Players   int
	FirstSeat int
	DeckSize  int
}

type HandDealtPayload struct {
	Seat int
	Hand []domain.Card
}

type TurnStartedPayload struct {
	Seat     int
	Turn     int
	HandSize int
	DeckSize int
	Table    *domain.Table
}

type CardDrawnPayload struct {
	Seat int
	Card domain.Card
}

type MoveAppliedPayload struct {
	Seat int
	Move domain.Move
	// Consolidation is set for pile merges made by the consolidation pass.
	Consolidation bool
}

type TurnEndedPayload struct {
	Seat     int
	Moves    int
	HandSize int
}

type GameEndedPayload struct {
	Winner    int // -1 on stalemate
	Stalemate bool
	Turns     int
	Table     *domain.Table
}
