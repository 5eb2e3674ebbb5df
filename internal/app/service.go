package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kingscorner/internal/domain"
)

// Shuffler returns a reordered copy of deck.
type Shuffler func(deck []domain.Card, rng *rand.Rand) []domain.Card

// NoShuffle deals the deck in the order given.
func NoShuffle(deck []domain.Card, _ *rand.Rand) []domain.Card {
	return append([]domain.Card(nil), deck...)
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShuffler replaces the uniform shuffle used by Deal.
func WithShuffler(fn Shuffler) Option {
	return func(s *Service) {
		if fn != nil {
			s.shuffle = fn
		}
	}
}

// Service contains the dealing and turn use-cases operating on domain state.
type Service struct {
	rng     *rand.Rand
	logger  *zap.Logger
	shuffle Shuffler
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, opts ...Option) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Service{
		rng:     rng,
		logger:  zap.NewNop(),
		shuffle: domain.ShuffleDeck,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrTooFewPlayers     = errors.New("not enough players to start")
	ErrNotPlaying        = errors.New("game not in the required phase")
	ErrGameOver          = errors.New("game is over")
	ErrStrategyMissing   = errors.New("no strategy for seat")
	ErrCardCountMismatch = errors.New("cards lost or duplicated")
)

// Deal shuffles deck, deals HandSize cards to each of playerCount hands and
// one card to each foundation pile. The deck size is checked before anything
// is dealt. The input deck is not modified.
func (s *Service) Deal(playerCount int, deck []domain.Card) (remaining []domain.Card, hands [][]domain.Card, foundations [][]domain.Card, err error) {
	if playerCount < 1 {
		return nil, nil, nil, fmt.Errorf("%w: %d", ErrTooFewPlayers, playerCount)
	}
	need := playerCount*HandSize + domain.FoundationCount
	if len(deck) < need {
		return nil, nil, nil, fmt.Errorf("%w: %d players need %d cards, deck has %d",
			domain.ErrInsufficientDeck, playerCount, need, len(deck))
	}

	shuffled := s.shuffle(deck, s.rng)

	cardIdx := 0
	hands = make([][]domain.Card, playerCount)
	for p := range hands {
		hands[p] = append([]domain.Card(nil), shuffled[cardIdx:cardIdx+HandSize]...)
		cardIdx += HandSize
	}

	foundations = make([][]domain.Card, domain.FoundationCount)
	for i := range foundations {
		foundations[i] = []domain.Card{shuffled[cardIdx]}
		cardIdx++
	}

	remaining = append([]domain.Card(nil), shuffled[cardIdx:]...)
	return remaining, hands, foundations, nil
}

// StartGame deals a new game for playerCount seats and picks a random first player.
func (s *Service) StartGame(playerCount int, deck []domain.Card) (*domain.Game, []Event, error) {
	if playerCount < MinPlayersToStartGame {
		return nil, nil, fmt.Errorf("%w: %d", ErrTooFewPlayers, playerCount)
	}

	remaining, hands, foundations, err := s.Deal(playerCount, deck)
	if err != nil {
		return nil, nil, err
	}

	seeds := make([]domain.Card, 0, len(foundations))
	for _, pile := range foundations {
		seeds = append(seeds, pile...)
	}

	game := &domain.Game{
		ID:        uuid.NewString(),
		Phase:     domain.PhaseAwaitingDraw,
		Deck:      remaining,
		Table:     domain.NewTable(seeds),
		Winner:    -1,
		CardTotal: len(deck),
	}
	events := make([]Event, 0, playerCount+1)
	for seat, hand := range hands {
		game.Players = append(game.Players, &domain.Player{Seat: seat, Hand: hand})
		events = append(events, Event{
			Kind:       EventHandDealt,
			GameID:     game.ID,
			Payload:    HandDealtPayload{Seat: seat, Hand: append([]domain.Card(nil), hand...)},
			Recipients: []int{seat},
		})
	}
	game.CurrentSeat = s.rng.Intn(playerCount)

	events = append(events, Event{
		Kind:   EventGameStarted,
		GameID: game.ID,
		Payload: GameStartedPayload{
			Players:   playerCount,
			FirstSeat: game.CurrentSeat,
			DeckSize:  len(game.Deck),
		},
	})

	s.logger.Info("game started",
		zap.String("game_id", game.ID),
		zap.Int("players", playerCount),
		zap.Int("first_seat", game.CurrentSeat),
		zap.Int("deck", len(game.Deck)))

	return game, events, nil
}

// Draw moves the first deck card, if any, into the active player's hand and
// opens the player's turn. Draws are never legality-checked.
func (s *Service) Draw(game *domain.Game) ([]Event, error) {
	if game.Phase == domain.PhaseGameOver {
		return nil, ErrGameOver
	}
	if game.Phase != domain.PhaseAwaitingDraw {
		return nil, fmt.Errorf("%w: draw during %s", ErrNotPlaying, game.Phase)
	}

	pl := game.CurrentPlayer()
	game.Turns++

	var events []Event
	if len(game.Deck) > 0 {
		drawn := game.Deck[0]
		game.Deck = game.Deck[1:]
		pl.Hand = append(pl.Hand, drawn)
		events = append(events, Event{
			Kind:       EventCardDrawn,
			GameID:     game.ID,
			Payload:    CardDrawnPayload{Seat: pl.Seat, Card: drawn},
			Recipients: []int{pl.Seat},
		})
	}

	game.Phase = domain.PhasePlayerTurn
	events = append(events, Event{
		Kind:   EventTurnStarted,
		GameID: game.ID,
		Payload: TurnStartedPayload{
			Seat:     pl.Seat,
			Turn:     game.Turns,
			HandSize: len(pl.Hand),
			DeckSize: len(game.Deck),
			Table:    game.Table.Clone(),
		},
	})

	s.logger.Debug("turn started",
		zap.String("game_id", game.ID),
		zap.Int("player", pl.Seat),
		zap.Int("turn", game.Turns),
		zap.Int("deck", len(game.Deck)))

	return events, nil
}

// EndTurn closes the active player's turn. An empty hand wins the game.
// Otherwise play passes to the next seat, unless the deck is empty and every
// player has just taken a turn without moving, which ends the game as a stalemate.
func (s *Service) EndTurn(game *domain.Game, moves int) ([]Event, error) {
	if game.Phase == domain.PhaseGameOver {
		return nil, ErrGameOver
	}
	if game.Phase != domain.PhasePlayerTurn {
		return nil, fmt.Errorf("%w: end turn during %s", ErrNotPlaying, game.Phase)
	}

	pl := game.CurrentPlayer()
	events := []Event{{
		Kind:    EventTurnEnded,
		GameID:  game.ID,
		Payload: TurnEndedPayload{Seat: pl.Seat, Moves: moves, HandSize: len(pl.Hand)},
	}}

	if len(pl.Hand) == 0 {
		game.Winner = pl.Seat
		return append(events, s.finish(game)), nil
	}

	// A pass only counts as idle when nothing could have been played.
	if moves == 0 && len(game.Deck) == 0 && !domain.HasLegalMove(game.Table, pl.Hand) {
		game.IdleTurns++
	} else {
		game.IdleTurns = 0
	}
	if game.IdleTurns >= domain.CountPlayersWithCards(game) {
		game.Stalemate = true
		return append(events, s.finish(game)), nil
	}

	game.CurrentSeat = game.NextSeat()
	game.Phase = domain.PhaseAwaitingDraw
	return events, nil
}

func (s *Service) finish(game *domain.Game) Event {
	game.Phase = domain.PhaseGameOver

	s.logger.Info("game ended",
		zap.String("game_id", game.ID),
		zap.Int("winner", game.Winner),
		zap.Bool("stalemate", game.Stalemate),
		zap.Int("turns", game.Turns))

	return Event{
		Kind:   EventGameEnded,
		GameID: game.ID,
		Payload: GameEndedPayload{
			Winner:    game.Winner,
			Stalemate: game.Stalemate,
			Turns:     game.Turns,
			Table:     game.Table.Clone(),
		},
	}
}
