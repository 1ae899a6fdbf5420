package game_test

import (
	"testing"

	"othello/game"
	"othello/game/gametest"

	"github.com/stretchr/testify/require"
)

func TestRecordPassOrMove(t *testing.T) {
	t.Run("counting a move and handing over the turn", func(t *testing.T) {
		s := game.NewState()
		s.Passes = 1

		s.RecordPassOrMove(true)

		require.Equal(t, game.State{Turn: game.White, Placed: 1, Passes: 0}, *s)
	})

	t.Run("counting consecutive passes", func(t *testing.T) {
		s := game.NewState()

		s.RecordPassOrMove(false)
		s.RecordPassOrMove(false)

		require.Equal(t, game.State{Turn: game.Black, Placed: 0, Passes: 2}, *s)
	})

	t.Run("resetting to the start of a game", func(t *testing.T) {
		s := &game.State{Turn: game.White, Placed: 12, Passes: 1}

		s.Reset()

		require.Equal(t, *game.NewState(), *s)
	})
}

func TestIsTerminal(t *testing.T) {
	deadlocked := `
		XXXX....
		........
		........
		........
		........
		........
		........
		OOOO....`

	t.Run("continuing the opening", func(t *testing.T) {
		b, s := game.NewGame()

		over, outcome := s.IsTerminal(b)

		require.False(t, over)
		require.Equal(t, game.Undecided, outcome)
	})

	t.Run("ending in a draw after two passes on equal counts", func(t *testing.T) {
		b := gametest.MustParse(deadlocked)
		require.False(t, b.HasAnyLegalMove(game.Black), "Neither side should be able to move")
		require.False(t, b.HasAnyLegalMove(game.White), "Neither side should be able to move")
		s := game.NewState()
		s.RecordPassOrMove(false)
		s.RecordPassOrMove(false)

		over, outcome := s.IsTerminal(b)

		require.True(t, over)
		require.Equal(t, game.Draw, outcome)
		require.Equal(t, game.Empty, outcome.Winner())
		require.Equal(t, game.Tie, outcome.ResultFor(game.Black))
	})

	t.Run("not ending after a single pass", func(t *testing.T) {
		b := gametest.MustParse(deadlocked)
		s := game.NewState()
		s.RecordPassOrMove(false)

		over, _ := s.IsTerminal(b)

		require.False(t, over)
	})

	t.Run("ending by stone majority after two passes", func(t *testing.T) {
		b := gametest.MustParse(`
			XXXX....
			........
			........
			........
			........
			........
			........
			OOO.....`)
		s := &game.State{Turn: game.Black, Placed: 20, Passes: 2}

		over, outcome := s.IsTerminal(b)

		require.True(t, over)
		require.Equal(t, game.BlackWins, outcome)
		require.Equal(t, game.Black, outcome.Winner())
		require.Equal(t, game.Win, outcome.ResultFor(game.Black))
		require.Equal(t, game.Lose, outcome.ResultFor(game.White))
	})

	t.Run("ending when every placement has been made", func(t *testing.T) {
		b := &game.Board{}
		for r := 0; r < game.Size; r++ {
			for c := 0; c < game.Size; c++ {
				b[r][c] = game.White
			}
		}
		b[0][0] = game.Black
		s := &game.State{Turn: game.Black, Placed: game.MaxPlacements}

		over, outcome := s.IsTerminal(b)

		require.True(t, over)
		require.Equal(t, game.WhiteWins, outcome)
		require.Equal(t, "white wins", outcome.String())
	})
}

func TestOutcomeResultFor(t *testing.T) {
	require.Equal(t, game.Pending, game.Undecided.ResultFor(game.Black))
	require.Equal(t, game.Lose, game.BlackWins.ResultFor(game.White))
	require.Equal(t, game.Win, game.WhiteWins.ResultFor(game.White))
	require.Equal(t, "draw", game.Tie.String())
}
