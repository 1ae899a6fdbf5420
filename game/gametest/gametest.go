// Package gametest provides position generators for tests of packages built on
// the game rules.
package gametest

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

// RandomPosition plays up to plies random turns from the opening position and
// returns the board and state reached. Turns where the mover has no legal move
// are recorded as passes. Generation stops early at a terminal position. The
// same seed always yields the same position.
func RandomPosition(seed uint64, plies int) (*game.Board, *game.State) {
	r := rand.New(rand.NewSource(seed))
	b, s := game.NewGame()
	for i := 0; i < plies; i++ {
		if over, _ := s.IsTerminal(b); over {
			break
		}
		moves := b.LegalMoves(s.Turn)
		if len(moves) == 0 {
			s.RecordPassOrMove(false)
			continue
		}
		if _, err := b.Apply(moves[r.Intn(len(moves))], s.Turn); err != nil {
			panic(err) // Generated moves are legal
		}
		s.RecordPassOrMove(true)
	}
	return b, s
}

// MustParse parses a board diagram and panics on malformed input.
func MustParse(diagram string) *game.Board {
	b, err := game.ParseBoard(diagram)
	if err != nil {
		panic(err)
	}
	return b
}
