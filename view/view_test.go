package view

import (
	"testing"

	"pawns/game"

	"github.com/stretchr/testify/require"
)

func guard(name string, value int) game.Card {
	grid, err := game.ParseGrid([]string{"XXXXX", "XXXXX", "XXCIX", "XXXXX", "XXXXX"})
	if err != nil {
		panic(err)
	}
	return game.Card{Name: name, Cost: 1, Value: value, Grid: grid}
}

func deck(value int) []game.Card {
	return []game.Card{guard("A", value), guard("B", value), guard("C", value)}
}

func TestCell(t *testing.T) {
	var pawns game.Cell
	require.NoError(t, pawns.AddPawn(game.Blue))
	require.NoError(t, pawns.AddPawn(game.Blue))
	var card game.Cell
	card.SetCard(guard("A", 4), game.Red)
	var big game.Cell
	big.SetCard(guard("A", 12), game.Blue)

	require.Equal(t, "..", Cell(game.Cell{}))
	require.Equal(t, "b2", Cell(pawns))
	require.Equal(t, "R4", Cell(card))
	require.Equal(t, "B+", Cell(big), "Values above 9 keep the two-character width")
}

func TestBoard(t *testing.T) {
	t.Run("game in progress", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.StartGame(2, 3, deck(2), deck(3), 1))
		require.NoError(t, b.PlaceCard(0, 0, 0))

		want := "" +
			"  2 | R2 r1 b1 | 0\n" +
			"  0 | r1 .. b1 | 0\n" +
			"RED 2 - BLUE 0, BLUE to play\n"
		require.Equal(t, want, String(b))
	})

	t.Run("finished game", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.StartGame(1, 3, deck(2), deck(3), 1))
		require.NoError(t, b.PassTurn())
		require.NoError(t, b.PlaceCard(0, 0, 2))
		require.NoError(t, b.PassTurn())
		require.NoError(t, b.PassTurn())

		want := "" +
			"  0 | r1 .. B3 | 3\n" +
			"RED 0 - BLUE 3, BLUE wins\n"
		require.Equal(t, want, String(b))
	})

	t.Run("not started", func(t *testing.T) {
		require.Equal(t, "(not started)\n", String(game.NewBoard()))
	})
}

func TestHand(t *testing.T) {
	require.Equal(t, "0:A(1/2) 1:B(1/2)", Hand(deck(2)[:2]))
	require.Equal(t, "", Hand(nil))
}
