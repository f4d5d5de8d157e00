package strategy

import (
	"testing"

	"pawns/game"

	"github.com/stretchr/testify/require"
)

// reach claims the cell to the right of the card.
var reach = []string{
	"XXXXX",
	"XXXXX",
	"XXCIX",
	"XXXXX",
	"XXXXX",
}

func TestFillFirst(t *testing.T) {
	deck := deckOf(6, card("Guard", 1, 1))

	t.Run("red scans left to right", func(t *testing.T) {
		b := newBoard(t, 3, 5, deck, deck, 2)

		require.Equal(t, game.Place(0, 0, 0), NewFillFirst().ChooseMove(b))
	})

	t.Run("blue scans right to left", func(t *testing.T) {
		b := newBoard(t, 3, 5, deck, deck, 2)
		require.NoError(t, b.PassTurn())

		require.Equal(t, game.Place(0, 0, 4), NewFillFirst().ChooseMove(b))
	})

	t.Run("hand order comes before cells", func(t *testing.T) {
		red := append([]game.Card{card("Knight", 2, 3)}, deckOf(5, card("Guard", 1, 1))...)
		b := newBoard(t, 3, 5, red, deck, 2)

		require.Equal(t, game.Place(1, 0, 0), NewFillFirst().ChooseMove(b), "Knight fits nowhere so Guard should be played")
	})

	t.Run("empty hand passes", func(t *testing.T) {
		require.Equal(t, game.Pass(), NewFillFirst().ChooseMove(emptyHandBoard(t)))
	})
}

func TestMaximizeRowScore(t *testing.T) {
	deck := deckOf(6, card("Guard", 1, 1))

	t.Run("takes the first winnable row", func(t *testing.T) {
		b := newBoard(t, 2, 3, deck, deck, 2)

		require.Equal(t, game.Place(0, 0, 0), NewMaximizeRowScore().ChooseMove(b))
	})

	t.Run("skips rows already won", func(t *testing.T) {
		b := newBoard(t, 2, 3, deck, deck, 2, game.WithoutDraw())
		require.NoError(t, b.PlaceCard(0, 0, 0))
		require.NoError(t, b.PassTurn())

		require.Equal(t, game.Place(0, 1, 0), NewMaximizeRowScore().ChooseMove(b))
	})

	t.Run("passes when no row can be won", func(t *testing.T) {
		b := newBoard(t, 1, 3, deckOf(3, card("Guard", 1, 1)), deckOf(3, card("Giant", 1, 3)), 1)
		require.NoError(t, b.PassTurn())
		require.NoError(t, b.PlaceCard(0, 0, 2))

		require.Equal(t, game.Pass(), NewMaximizeRowScore().ChooseMove(b))
	})
}

func TestControlBoard(t *testing.T) {
	t.Run("prefers the move that claims cells", func(t *testing.T) {
		red := append([]game.Card{card("Guard", 1, 1), card("Reach", 1, 1, reach...)}, deckOf(4, card("Guard", 1, 1))...)
		b := newBoard(t, 3, 5, red, red, 2)

		move := NewControlBoard().ChooseMove(b)

		require.Equal(t, game.Place(1, 0, 0), move, "First cell in row-major order should win ties")
	})

	t.Run("empty when nothing gains a cell", func(t *testing.T) {
		deck := deckOf(6, card("Guard", 1, 1))
		b := newBoard(t, 3, 5, deck, deck, 2)

		require.Equal(t, game.Empty(), NewControlBoard().ChooseMove(b))
	})

	t.Run("empty hand", func(t *testing.T) {
		require.Equal(t, game.Empty(), NewControlBoard().ChooseMove(emptyHandBoard(t)))
	})
}

// duelBoard gives RED a strong card and a card that steals BLUE's only pawn
// cell, against a BLUE hand of even stronger cards.
func duelBoard(t *testing.T) *game.Board {
	t.Helper()
	flipper := card("Flipper", 1, 1,
		"XXXXX",
		"XXXXX",
		"XXCXI",
		"XXXXX",
		"XXXXX",
	)
	red := append([]game.Card{card("Big", 1, 3), flipper}, deckOf(4, card("Big", 1, 3))...)
	blue := deckOf(6, card("Giant", 1, 5))
	return newBoard(t, 1, 3, red, blue, 2)
}

func TestMinimax(t *testing.T) {
	t.Run("looks past the greedy move", func(t *testing.T) {
		b := duelBoard(t)

		require.Equal(t, game.Place(0, 0, 0), NewMaximizeRowScore().ChooseMove(b), "Greedy play takes the row with Big")
		require.Equal(t, game.Place(1, 0, 0), NewMinimax(NewFillFirst()).ChooseMove(b), "Flipper leaves BLUE no reply")
	})

	t.Run("nil opponent defaults to FillFirst", func(t *testing.T) {
		require.Equal(t, game.Place(1, 0, 0), NewMinimax(nil).ChooseMove(duelBoard(t)))
	})

	t.Run("asks the opponent once per legal move", func(t *testing.T) {
		opponent := &mockStrategy{move: game.Pass()}

		move := NewMinimax(opponent).ChooseMove(duelBoard(t))

		require.Equal(t, 2, opponent.calls)
		require.Equal(t, game.Place(0, 0, 0), move, "A passive opponent makes Big the best move")
	})

	t.Run("empty opponent move leaves the board", func(t *testing.T) {
		opponent := &mockStrategy{move: game.Empty()}

		require.Equal(t, game.Place(0, 0, 0), NewMinimax(opponent).ChooseMove(duelBoard(t)))
	})

	t.Run("cache skips repeated projections", func(t *testing.T) {
		opponent := &mockStrategy{move: game.Pass()}
		m := NewMinimax(opponent, WithCache(16))
		b := duelBoard(t)

		first := m.ChooseMove(b)
		second := m.ChooseMove(b)

		require.Equal(t, first, second)
		require.Equal(t, 2, opponent.calls, "Second search should be served from the cache")
	})

	t.Run("empty hand", func(t *testing.T) {
		require.Equal(t, game.Empty(), NewMinimax(nil).ChooseMove(emptyHandBoard(t)))
	})
}

func TestRandom(t *testing.T) {
	deck := deckOf(6, card("Guard", 1, 1))

	t.Run("plays legal moves", func(t *testing.T) {
		b := newBoard(t, 3, 5, deck, deck, 2)
		s := NewRandom(1)

		for i := 0; i < 20; i++ {
			move := s.ChooseMove(b)
			require.True(t, move.IsPlacement())
			require.NoError(t, b.CheckMove(move.CardIndex, move.Row, move.Col))
		}
	})

	t.Run("same seed replays the same choices", func(t *testing.T) {
		b := newBoard(t, 3, 5, deck, deck, 2)
		first, second := NewRandom(9), NewRandom(9)

		for i := 0; i < 10; i++ {
			require.Equal(t, first.ChooseMove(b), second.ChooseMove(b))
		}
	})

	t.Run("passes with nothing legal", func(t *testing.T) {
		require.Equal(t, game.Pass(), NewRandom(1).ChooseMove(emptyHandBoard(t)))
	})
}

func TestErrorsBecomeMoves(t *testing.T) {
	boards := map[string]game.ReadOnlyBoard{
		"not started": game.NewBoard(),
		"mock error":  &mockBoard{err: game.ErrNotStarted},
		"empty hand":  &mockBoard{current: game.Red},
	}
	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, game.Pass(), NewFillFirst().ChooseMove(b))
			require.Equal(t, game.Pass(), NewMaximizeRowScore().ChooseMove(b))
			require.Equal(t, game.Pass(), NewRandom(1).ChooseMove(b))
			require.Equal(t, game.Empty(), NewControlBoard().ChooseMove(b))
			require.Equal(t, game.Empty(), NewMinimax(nil).ChooseMove(b))
		})
	}

	t.Run("finished game", func(t *testing.T) {
		deck := deckOf(3, card("Guard", 1, 1))
		b := newBoard(t, 1, 3, deck, deck, 1)
		require.NoError(t, b.PassTurn())
		require.NoError(t, b.PassTurn())
		require.True(t, b.IsOver())

		require.Equal(t, game.Pass(), NewFillFirst().ChooseMove(b))
		require.Equal(t, game.Empty(), NewMinimax(nil).ChooseMove(b))
	})
}
