package game

import "strings"

// Board is the 8x8 grid indexed [row][col]. It is a value type: assigning a
// Board copies it, which is how concurrent searches get their own board.
type Board [Size][Size]Color

// Count holds the number of stones of each color.
type Count struct {
	Black int
	White int
}

// NewBoard returns the opening position: two stones of each color on the
// center diagonals, all other cells empty.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the opening position in place.
func (b *Board) Reset() {
	*b = Board{}
	b[3][3], b[4][4] = White, White
	b[3][4], b[4][3] = Black, Black
}

// At returns the content of a cell.
func (b *Board) At(sq Square) (Color, error) {
	if !sq.InBounds() {
		return Empty, moveError(sq, Empty, ErrOutOfBounds)
	}
	return b.at(sq), nil
}

func (b *Board) at(sq Square) Color {
	return b[sq.Row][sq.Col]
}

func (b *Board) set(sq Square, c Color) {
	b[sq.Row][sq.Col] = c
}

// IsLegal reports whether color may place a stone on sq: the cell must be on
// the board and empty, and at least one direction must bracket a run of
// opponent stones.
func (b *Board) IsLegal(sq Square, color Color) bool {
	if !sq.InBounds() || color == Empty || b.at(sq) != Empty {
		return false
	}
	for _, d := range directions {
		if b.bracket(sq, d, color) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal square for color in row-major order. The order
// is the search's tie-break order.
func (b *Board) LegalMoves(color Color) []Square {
	var moves []Square
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sq := Square{Row: r, Col: c}
			if b.IsLegal(sq, color) {
				moves = append(moves, sq)
			}
		}
	}
	return moves
}

// HasAnyLegalMove reports whether color has a move, i.e. need not pass.
func (b *Board) HasAnyLegalMove(color Color) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.IsLegal(Square{Row: r, Col: c}, color) {
				return true
			}
		}
	}
	return false
}

// bracket returns the length of the run of opponent stones that a stone of
// color on origin would capture in direction d, or 0 if the run is not closed
// by a stone of color.
func (b *Board) bracket(origin Square, d direction, color Color) int {
	opponent := color.Opponent()
	sq := origin.step(d)
	// The adjacent cell must hold an opponent stone
	if !sq.InBounds() || b.at(sq) != opponent {
		return 0
	}
	run := 0
	for sq.InBounds() {
		switch b.at(sq) {
		case opponent:
			run++
		case color:
			return run
		default:
			return 0
		}
		sq = sq.step(d)
	}
	return 0 // Ran off the board over opponent stones
}

// Count tallies the stones of each color.
func (b *Board) Count() Count {
	var count Count
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				count.Black++
			case White:
				count.White++
			}
		}
	}
	return count
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	count := b.Count()
	return count.Black + count.White
}

// String draws the board one row per line: '.' empty, 'X' black, 'O' white.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads the format written by String. Blank lines and spaces are
// ignored; it returns ErrOutOfBounds unless exactly 8 rows of 8 cells are given.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	row := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if row >= Size || len(line) != Size {
			return nil, moveError(Square{Row: row, Col: len(line)}, Empty, ErrOutOfBounds)
		}
		for col, ch := range line {
			switch ch {
			case 'X', 'x', 'B', 'b':
				b[row][col] = Black
			case 'O', 'o', 'W', 'w':
				b[row][col] = White
			}
		}
		row++
	}
	if row != Size {
		return nil, moveError(Square{Row: row}, Empty, ErrOutOfBounds)
	}
	return b, nil
}
