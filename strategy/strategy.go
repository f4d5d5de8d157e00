// Package strategy holds the AI policies that pick a move for the current
// player of a board.
package strategy

import "pawns/game"

// Strategy picks the next move for the board's current player. It never
// changes the board it is given; what-if exploration happens on copies.
type Strategy interface {
	ChooseMove(board game.ReadOnlyBoard) game.Move
}

// Func adapts a plain function to a Strategy.
type Func func(board game.ReadOnlyBoard) game.Move

func (f Func) ChooseMove(board game.ReadOnlyBoard) game.Move { return f(board) }

// AlwaysPass passes on every turn. It is the default fallback of a Chain.
type AlwaysPass struct{}

func (AlwaysPass) ChooseMove(game.ReadOnlyBoard) game.Move { return game.Pass() }

func (AlwaysPass) String() string { return "pass" }

type position struct {
	row, col int
}

// rowMajor lists every cell top to bottom, left to right.
func rowMajor(rows, cols int) []position {
	cells := make([]position, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, position{r, c})
		}
	}
	return cells
}

// scanCols lists the columns in p's reading direction: RED reads left to
// right, BLUE right to left.
func scanCols(cols int, p game.Player) []int {
	order := make([]int, cols)
	for i := range order {
		if p == game.Blue {
			order[i] = cols - 1 - i
		} else {
			order[i] = i
		}
	}
	return order
}

// turn returns the current player and their hand.
func turn(board game.ReadOnlyBoard) (game.Player, []game.Card, error) {
	me, err := board.CurrentPlayer()
	if err != nil {
		return game.NoPlayer, nil, err
	}
	hand, err := board.Hand(me)
	if err != nil {
		return game.NoPlayer, nil, err
	}
	return me, hand, nil
}

// legalMoves lists every legal placement, cells row-major and the hand in
// order within each cell.
func legalMoves(board game.ReadOnlyBoard, handSize int) []game.Move {
	var moves []game.Move
	for _, pos := range rowMajor(board.Rows(), board.Cols()) {
		for i := 0; i < handSize; i++ {
			if board.CheckMove(i, pos.row, pos.col) == nil {
				moves = append(moves, game.Place(i, pos.row, pos.col))
			}
		}
	}
	return moves
}

// simulate plays move on a copy of board.
func simulate(board game.ReadOnlyBoard, move game.Move) (game.MutableBoard, error) {
	next := board.Copy()
	if err := move.Apply(next); err != nil {
		return nil, err
	}
	return next, nil
}
