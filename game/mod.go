// Package game implements the Othello rules: the board, legal move generation,
// reversible move application, game state and the static evaluator.
package game

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

// MaxPlacements is the number of stones that can be placed after the opening
// four (8x8 - 4).
const MaxPlacements = Size*Size - 4

// Color is the content of a cell, and also identifies a player.
type Color int8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other player. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Sign is +1 for Black, -1 for White and 0 for Empty.
func (c Color) Sign() int {
	switch c {
	case Black:
		return 1
	case White:
		return -1
	default:
		return 0
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Square is a board coordinate. Row is the outer index of the row-major scan.
type Square struct {
	Row int
	Col int
}

// InBounds reports whether the square lies on the board.
func (sq Square) InBounds() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.Row, sq.Col)
}

func (sq Square) step(d direction) Square {
	return Square{Row: sq.Row + d.dr, Col: sq.Col + d.dc}
}

type direction struct {
	dr, dc int
}

// Scan order of the eight directions; it fixes the order of flips in an UndoRecord.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
