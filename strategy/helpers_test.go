package strategy

import (
	"fmt"
	"testing"

	"pawns/game"

	"github.com/stretchr/testify/require"
)

var blankGrid = []string{
	"XXXXX",
	"XXXXX",
	"XXCXX",
	"XXXXX",
	"XXXXX",
}

func card(name string, cost, value int, rows ...string) game.Card {
	if len(rows) == 0 {
		rows = blankGrid
	}
	grid, err := game.ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return game.Card{Name: name, Cost: cost, Value: value, Grid: grid}
}

func deckOf(n int, c game.Card) []game.Card {
	deck := make([]game.Card, n)
	for i := range deck {
		deck[i] = c
		deck[i].Name = fmt.Sprintf("%s-%d", c.Name, i)
	}
	return deck
}

func newBoard(t *testing.T, rows, cols int, red, blue []game.Card, handSize int, options ...game.Option) *game.Board {
	t.Helper()
	b := game.NewBoard(options...)
	require.NoError(t, b.StartGame(rows, cols, red, blue, handSize))
	return b
}

// emptyHandBoard leaves RED to move with no cards left.
func emptyHandBoard(t *testing.T) *game.Board {
	t.Helper()
	deck := deckOf(3, card("Guard", 1, 1))
	b := newBoard(t, 1, 3, deck, deck, 1, game.WithoutDraw())
	require.NoError(t, b.PlaceCard(0, 0, 0))
	require.NoError(t, b.PassTurn())
	hand, err := b.Hand(game.Red)
	require.NoError(t, err)
	require.Empty(t, hand)
	return b
}

// mockBoard answers every query with fixed values, or err when set.
type mockBoard struct {
	current game.Player
	hand    []game.Card
	err     error
}

var _ game.ReadOnlyBoard = (*mockBoard)(nil)

func (m *mockBoard) IsStarted() bool { return m.err == nil }
func (m *mockBoard) IsOver() bool    { return false }
func (m *mockBoard) Rows() int       { return 3 }
func (m *mockBoard) Cols() int       { return 5 }

func (m *mockBoard) CurrentPlayer() (game.Player, error) {
	if m.err != nil {
		return game.NoPlayer, m.err
	}
	return m.current, nil
}

func (m *mockBoard) CellAt(row, col int) (game.Cell, error) { return game.Cell{}, m.err }

func (m *mockBoard) Hand(p game.Player) ([]game.Card, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hand, nil
}

func (m *mockBoard) DeckSize(p game.Player) (int, error)   { return 0, m.err }
func (m *mockBoard) RowScore(row int) (game.Score, error)  { return game.Score{}, m.err }
func (m *mockBoard) TotalScore() (game.Score, error)       { return game.Score{}, m.err }
func (m *mockBoard) Winner() (game.Player, error)          { return game.NoPlayer, game.ErrGameNotOver }
func (m *mockBoard) OwnedCells(p game.Player) (int, error) { return 0, m.err }
func (m *mockBoard) Hash() game.StateHash                  { return 0 }
func (m *mockBoard) Copy() game.MutableBoard               { return game.NewBoard() }

func (m *mockBoard) CheckMove(cardIndex, row, col int) error {
	if m.err != nil {
		return m.err
	}
	if cardIndex < 0 || cardIndex >= len(m.hand) {
		return &game.CardIndexError{Index: cardIndex, HandSize: len(m.hand)}
	}
	return nil
}

// mockStrategy returns a fixed move and counts how often it was asked.
type mockStrategy struct {
	move  game.Move
	calls int
}

func (m *mockStrategy) ChooseMove(game.ReadOnlyBoard) game.Move {
	m.calls++
	return m.move
}
