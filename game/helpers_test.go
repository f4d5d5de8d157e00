package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var blankGrid = []string{
	"XXXXX",
	"XXXXX",
	"XXCXX",
	"XXXXX",
	"XXXXX",
}

// testCard returns a card with no influence.
func testCard(name string, cost, value int) Card {
	return gridCard(name, cost, value, blankGrid...)
}

func gridCard(name string, cost, value int, rows ...string) Card {
	grid, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return Card{Name: name, Cost: cost, Value: value, Grid: grid}
}

// deckOf repeats card n times, naming each copy uniquely.
func deckOf(n int, card Card) []Card {
	deck := make([]Card, n)
	for i := range deck {
		deck[i] = card
		deck[i].Name = fmt.Sprintf("%s-%d", card.Name, i)
	}
	return deck
}

func startedBoard(t *testing.T, rows, cols int, red, blue []Card, handSize int, options ...Option) *Board {
	t.Helper()
	b := NewBoard(options...)
	require.NoError(t, b.StartGame(rows, cols, red, blue, handSize))
	return b
}

func mustCell(t *testing.T, b ReadOnlyBoard, row, col int) Cell {
	t.Helper()
	cell, err := b.CellAt(row, col)
	require.NoError(t, err)
	return cell
}
