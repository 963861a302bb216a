package game

import "errors"

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrSamePlayer    = errors.New("players must be distinct")
	ErrNoLegalMoves  = errors.New("no legal moves")
)
