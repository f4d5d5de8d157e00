package strategy

import "pawns/game"

// ControlBoard picks the placement that leaves the current player owning the
// most cells. It returns an empty move when no placement gains a cell.
type ControlBoard struct{}

func NewControlBoard() *ControlBoard { return &ControlBoard{} }

func (*ControlBoard) ChooseMove(board game.ReadOnlyBoard) game.Move {
	me, hand, err := turn(board)
	if err != nil {
		return game.Empty()
	}
	best, err := board.OwnedCells(me)
	if err != nil {
		return game.Empty()
	}
	choice := game.Empty()
	// Strict comparison keeps the first of equally good moves.
	for _, move := range legalMoves(board, len(hand)) {
		next, err := simulate(board, move)
		if err != nil {
			continue
		}
		owned, err := next.OwnedCells(me)
		if err != nil {
			continue
		}
		if owned > best {
			best, choice = owned, move
		}
	}
	return choice
}

func (*ControlBoard) String() string { return "control" }
