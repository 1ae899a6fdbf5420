package game

// Function forms of the Board methods, for callers that treat the rules as a
// set of operations over a board.

func IsLegal(b *Board, sq Square, color Color) bool {
	return b.IsLegal(sq, color)
}

func LegalMoves(b *Board, color Color) []Square {
	return b.LegalMoves(color)
}

func ApplyMove(b *Board, sq Square, color Color) (UndoRecord, error) {
	return b.Apply(sq, color)
}

func UndoMove(b *Board, record UndoRecord) {
	b.Undo(record)
}

func HasAnyLegalMove(b *Board, color Color) bool {
	return b.HasAnyLegalMove(color)
}
