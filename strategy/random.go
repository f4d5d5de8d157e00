package strategy

import (
	"sync"

	"pawns/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal placement, passing when there is
// none. Equal seeds replay equal games.
type Random struct {
	mux sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (s *Random) ChooseMove(board game.ReadOnlyBoard) game.Move {
	_, hand, err := turn(board)
	if err != nil {
		return game.Pass()
	}
	moves := legalMoves(board, len(hand))
	if len(moves) == 0 {
		return game.Pass()
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return moves[s.rng.Intn(len(moves))]
}

func (*Random) String() string { return "random" }
