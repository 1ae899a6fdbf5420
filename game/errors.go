package game

import (
	"errors"
	"fmt"
)

// Sentinel errors; test for them with errors.Is.
var (
	// ErrInvalidMove is returned when a move is not legal for the given color.
	ErrInvalidMove = errors.New("invalid move")

	// ErrOutOfBounds is returned for any square outside the board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrNoLegalMove is returned when a search is asked to move for a side that
	// has to pass.
	ErrNoLegalMove = errors.New("no legal move")

	// ErrInvalidColor is returned when Empty is used as a mover.
	ErrInvalidColor = errors.New("invalid color")
)

// MoveError describes a rejected move. It unwraps to one of the sentinels.
type MoveError struct {
	Square Square
	Color  Color
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s at %s: %v", e.Color, e.Square, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func moveError(sq Square, c Color, err error) error {
	return &MoveError{Square: sq, Color: c, Err: err}
}
