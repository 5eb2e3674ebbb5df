package domain

import "errors"

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrEmptyPile        = errors.New("pile is empty")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrCardNotInHand    = errors.New("card not in hand")
	ErrInsufficientDeck = errors.New("deck too small for player count")
)
