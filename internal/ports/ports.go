package ports

import (
	"context"

	"kingscorner/internal/domain"
)

// InputPort supplies raw move commands from a player.
type InputPort interface {
	// ReadLine shows prompt and blocks until a line of input arrives.
	// It returns io.EOF once the input is exhausted.
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// DisplayPort renders game state for a player. No game rule depends on it.
type DisplayPort interface {
	// ShowTable renders the four foundation and four corner piles.
	ShowTable(table *domain.Table) error
	// ShowHand renders a hand indexed from domain.HandIndexOffset, highest rank first.
	ShowHand(hand []domain.Card) error
	// Status renders a free-text message.
	Status(msg string) error
}
