package game

// Evaluator scores a board from perspective's point of view: higher is better
// for perspective.
type Evaluator func(b *Board, perspective Color) int

// weights is the positional value of each cell. Corners are the prize, the
// cells diagonally next to a corner give it away, edges are worth holding and
// the interior is close to neutral. The table is symmetric under rotation and
// reflection.
//
// Scores are signed: a Black stone adds its weight, a White stone subtracts it,
// so a raw sum is good for Black when positive. Positional flips the sign for a
// White perspective.
var weights = [Size][Size]int{
	{100, -40, 20, 5, 5, 20, -40, 100},
	{-40, -80, -1, -1, -1, -1, -80, -40},
	{20, -1, 5, 1, 1, 5, -1, 20},
	{5, -1, 1, 0, 0, 1, -1, 5},
	{5, -1, 1, 0, 0, 1, -1, 5},
	{20, -1, 5, 1, 1, 5, -1, 20},
	{-40, -80, -1, -1, -1, -1, -80, -40},
	{100, -40, 20, 5, 5, 20, -40, 100},
}

// Weight returns the positional weight of sq, or 0 off the board.
func Weight(sq Square) int {
	if !sq.InBounds() {
		return 0
	}
	return weights[sq.Row][sq.Col]
}

// Positional is the static evaluator: the weighted sum of stones. It looks at
// nothing but the current cells.
func Positional(b *Board, perspective Color) int {
	score := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			score += weights[r][c] * b[r][c].Sign()
		}
	}
	if perspective == White {
		return -score
	}
	return score
}

// Evaluate scores b for perspective with the positional table.
func Evaluate(b *Board, perspective Color) int {
	return Positional(b, perspective)
}
