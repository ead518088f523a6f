package game

import "errors"

// Reasons an action or seating request is rejected. Rejections never change
// table state; callers should re-prompt.
var (
	ErrHandNotInProgress = errors.New("no hand in progress")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrIllegalAction     = errors.New("illegal action")
	ErrInsufficientChips = errors.New("insufficient chips")
	ErrRaiseTooSmall     = errors.New("raise below minimum")

	ErrTableFull       = errors.New("table is full")
	ErrDuplicatePlayer = errors.New("player already seated")
	ErrInvalidBuyIn    = errors.New("buy-in must be positive")
)
