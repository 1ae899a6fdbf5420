package game

// Outcome is the result of a finished game.
type Outcome int

const (
	Undecided Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	case Draw:
		return "draw"
	default:
		return "undecided"
	}
}

// Winner returns the winning color, or Empty for a draw or an unfinished game.
func (o Outcome) Winner() Color {
	switch o {
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	default:
		return Empty
	}
}

// Result is an outcome seen from one player's side.
type Result int

const (
	Pending Result = iota
	Win
	Lose
	Tie
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Tie:
		return "draw"
	default:
		return "pending"
	}
}

// ResultFor returns the outcome from color's point of view.
func (o Outcome) ResultFor(color Color) Result {
	switch {
	case o == Undecided:
		return Pending
	case o == Draw:
		return Tie
	case o.Winner() == color:
		return Win
	default:
		return Lose
	}
}

// State is the turn bookkeeping that accompanies a Board. It is a small value;
// callers snapshot it by copying.
type State struct {
	Turn   Color // Side to move
	Placed int   // Stones placed since the start, the opening four excluded
	Passes int   // Consecutive passes
}

// NewState returns the state at the start of a game: Black to move.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the start-of-game state.
func (s *State) Reset() {
	*s = State{Turn: Black}
}

// RecordPassOrMove closes the current turn. A move resets the pass counter and
// counts a placement; a pass increments the pass counter. Either way the turn
// goes to the opponent.
func (s *State) RecordPassOrMove(moved bool) {
	if moved {
		s.Placed++
		s.Passes = 0
	} else {
		s.Passes++
	}
	s.Turn = s.Turn.Opponent()
}

// IsTerminal reports whether play must stop: two consecutive passes or a full
// complement of placements. The outcome is decided by stone majority.
func (s *State) IsTerminal(b *Board) (bool, Outcome) {
	if s.Passes < 2 && s.Placed < MaxPlacements {
		return false, Undecided
	}
	return true, Score(b)
}

// Score returns the outcome that the current stone counts would give.
func Score(b *Board) Outcome {
	count := b.Count()
	switch {
	case count.Black > count.White:
		return BlackWins
	case count.White > count.Black:
		return WhiteWins
	default:
		return Draw
	}
}

// NewGame returns a board in the opening position and its matching state.
func NewGame() (*Board, *State) {
	return NewBoard(), NewState()
}
