package strategy

import "pawns/game"

// MaximizeRowScore works down the board and takes the first move that puts
// the current player strictly ahead in a row they are not already winning.
type MaximizeRowScore struct{}

func NewMaximizeRowScore() *MaximizeRowScore { return &MaximizeRowScore{} }

func (*MaximizeRowScore) ChooseMove(board game.ReadOnlyBoard) game.Move {
	me, hand, err := turn(board)
	if err != nil {
		return game.Pass()
	}
	cols := scanCols(board.Cols(), me)
	for r := 0; r < board.Rows(); r++ {
		score, err := board.RowScore(r)
		if err != nil {
			return game.Pass()
		}
		if leads(score, me) {
			continue
		}
		for i := range hand {
			for _, c := range cols {
				if board.CheckMove(i, r, c) != nil {
					continue
				}
				move := game.Place(i, r, c)
				next, err := simulate(board, move)
				if err != nil {
					continue
				}
				if after, err := next.RowScore(r); err == nil && leads(after, me) {
					return move
				}
			}
		}
	}
	return game.Pass()
}

func (*MaximizeRowScore) String() string { return "maxrow" }

func leads(s game.Score, p game.Player) bool {
	return s.Of(p) > s.Of(p.Opponent())
}
