package strategy

import "pawns/game"

// FillFirst plays the first card of the hand that fits anywhere, scanning
// cells in the current player's reading direction.
type FillFirst struct{}

func NewFillFirst() *FillFirst { return &FillFirst{} }

func (*FillFirst) ChooseMove(board game.ReadOnlyBoard) game.Move {
	me, hand, err := turn(board)
	if err != nil {
		return game.Pass()
	}
	cols := scanCols(board.Cols(), me)
	for i := range hand {
		for r := 0; r < board.Rows(); r++ {
			for _, c := range cols {
				if board.CheckMove(i, r, c) == nil {
					return game.Place(i, r, c)
				}
			}
		}
	}
	return game.Pass()
}

func (*FillFirst) String() string { return "fillfirst" }
