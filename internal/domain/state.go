package domain

import "strconv"

// Phase represents the turn engine's lifecycle stage.
type Phase string

const (
	// PhaseAwaitingDraw is the state before the active player draws.
	PhaseAwaitingDraw Phase = "awaiting_draw"
	// PhasePlayerTurn is the state while the active player's strategy moves.
	PhasePlayerTurn Phase = "player_turn"
	// PhaseGameOver is terminal: someone went out or nobody can move.
	PhaseGameOver Phase = "game_over"
)

// Suit is one of the four standard suits.
type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
)

// Color is derived from a suit.
type Color int

const (
	ColorNone Color = iota
	Black
	Red
)

// Color returns red for hearts and diamonds, black for clubs and spades.
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	case Clubs, Spades:
		return Black
	default:
		return ColorNone
	}
}

const (
	Ace  = 1
	King = 13
)

// Card is a single playing card. Rank runs from 1 (Ace) to 13 (King).
type Card struct {
	Rank int
	Suit Suit
}

var suitGlyphs = map[Suit]string{
	Spades:   "♠",
	Hearts:   "♡",
	Diamonds: "♢",
	Clubs:    "♣",
}

// String renders rank then suit glyph, e.g. "10♡" or "K♠". Unknown suits
// render as "?".
func (c Card) String() string {
	glyph, ok := suitGlyphs[c.Suit]
	if !ok {
		glyph = "?"
	}
	switch c.Rank {
	case Ace:
		return "A" + glyph
	case 11:
		return "J" + glyph
	case 12:
		return "Q" + glyph
	case King:
		return "K" + glyph
	default:
		return strconv.Itoa(c.Rank) + glyph
	}
}

// Player holds the state for one seat.
type Player struct {
	Seat int
	Hand []Card
}

// Game captures the domain state for a single game instance.
type Game struct {
	ID    string
	Phase Phase

	Deck    []Card // draw pile, front is drawn first
	Table   *Table
	Players []*Player

	CurrentSeat int
	Turns       int

	// IdleTurns counts consecutive turns without a move while the deck is empty.
	IdleTurns int

	Winner    int // seat of the winner, -1 while undecided
	Stalemate bool

	// CardTotal is the number of cards dealt into play; it never changes.
	CardTotal int
}

// CurrentPlayer returns the active player.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.CurrentSeat]
}

// CardCount sums the cards in the deck, every hand and on the table.
func (g *Game) CardCount() int {
	n := len(g.Deck)
	for _, p := range g.Players {
		n += len(p.Hand)
	}
	if g.Table != nil {
		n += g.Table.CardCount()
	}
	return n
}

// NextSeat returns the seat after the current one, wrapping to 0.
func (g *Game) NextSeat() int {
	return (g.CurrentSeat + 1) % len(g.Players)
}
