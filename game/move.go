package game

// Move is a stone placement by a player.
type Move struct {
	Square Square
	Color  Color
}

// Flip is one captured stone and the color it held before the capture.
type Flip struct {
	Square Square
	Prior  Color
}

// UndoRecord holds what Undo needs to invert an Apply: the placed square and
// the flips in the order they were made (direction scan order, near to far
// within a direction). It holds no reference to the board.
type UndoRecord struct {
	Move  Move
	Flips []Flip
}

// Apply places a stone of color on sq and flips every bracketed run. A rejected
// move leaves the board untouched.
func (b *Board) Apply(sq Square, color Color) (UndoRecord, error) {
	if !sq.InBounds() {
		return UndoRecord{}, moveError(sq, color, ErrOutOfBounds)
	}
	if color != Black && color != White {
		return UndoRecord{}, moveError(sq, color, ErrInvalidColor)
	}
	if b.at(sq) != Empty {
		return UndoRecord{}, moveError(sq, color, ErrInvalidMove)
	}

	// Measure every run before writing so the scan never sees its own flips
	var runs [len(directions)]int
	total := 0
	for i, d := range directions {
		runs[i] = b.bracket(sq, d, color)
		total += runs[i]
	}
	if total == 0 {
		return UndoRecord{}, moveError(sq, color, ErrInvalidMove)
	}

	record := UndoRecord{
		Move:  Move{Square: sq, Color: color},
		Flips: make([]Flip, 0, total),
	}
	b.set(sq, color)
	for i, d := range directions {
		cur := sq
		for n := 0; n < runs[i]; n++ {
			cur = cur.step(d)
			record.Flips = append(record.Flips, Flip{Square: cur, Prior: b.at(cur)})
			b.set(cur, color)
		}
	}
	return record, nil
}

// Undo restores the board to its state before the Apply that produced record.
// Records must be undone in reverse order of application.
func (b *Board) Undo(record UndoRecord) {
	for i := len(record.Flips) - 1; i >= 0; i-- {
		f := record.Flips[i]
		b.set(f.Square, f.Prior)
	}
	b.set(record.Move.Square, Empty)
}
