package strategy

import (
	"fmt"
	"math"
	"sync"

	"pawns/game"

	"github.com/hashicorp/golang-lru/simplelru"
)

type MinimaxOption func(m *Minimax)

// WithCache memoizes projected margins by board hash. The cache is only
// sound when the opponent strategy is deterministic.
func WithCache(size int) MinimaxOption {
	return func(m *Minimax) {
		if size > 0 {
			m.cache = newMarginCache(size)
		}
	}
}

// Minimax looks one round ahead: for each legal placement it lets the
// opponent strategy reply on a copy and keeps the move with the best
// resulting total score margin.
type Minimax struct {
	opponent Strategy
	cache    *marginCache
}

// NewMinimax models the opponent with the given strategy, FillFirst when nil.
func NewMinimax(opponent Strategy, options ...MinimaxOption) *Minimax {
	if opponent == nil {
		opponent = NewFillFirst()
	}
	m := &Minimax{opponent: opponent}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) ChooseMove(board game.ReadOnlyBoard) game.Move {
	me, hand, err := turn(board)
	if err != nil {
		return game.Empty()
	}
	choice := game.Empty()
	bestMargin := math.MinInt
	for _, move := range legalMoves(board, len(hand)) {
		next, err := simulate(board, move)
		if err != nil {
			continue
		}
		margin, ok := m.project(next, me)
		if !ok {
			continue
		}
		if margin > bestMargin {
			bestMargin, choice = margin, move
		}
	}
	return choice
}

// project lets the opponent answer on next and returns me's total score
// lead afterwards. next is consumed.
func (m *Minimax) project(next game.MutableBoard, me game.Player) (int, bool) {
	key := next.Hash()
	if margin, ok := m.cache.lookup(key); ok {
		return margin, true
	}
	if !next.IsOver() {
		reply := m.opponent.ChooseMove(next)
		// An illegal reply leaves the board as it was.
		_ = reply.Apply(next)
	}
	total, err := next.TotalScore()
	if err != nil {
		return 0, false
	}
	margin := total.Of(me) - total.Of(me.Opponent())
	m.cache.add(key, margin)
	return margin, true
}

func (m *Minimax) String() string {
	return fmt.Sprintf("minimax(%v)", m.opponent)
}

type marginCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

func newMarginCache(size int) *marginCache {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		panic(err)
	}
	return &marginCache{lru: lru}
}

// lookup and add treat a nil cache as always empty.
func (mc *marginCache) lookup(key game.StateHash) (int, bool) {
	if mc == nil {
		return 0, false
	}
	mc.mux.Lock()
	defer mc.mux.Unlock()
	if margin, ok := mc.lru.Get(key); ok {
		return margin.(int), true
	}
	return 0, false
}

func (mc *marginCache) add(key game.StateHash, margin int) {
	if mc == nil {
		return
	}
	mc.mux.Lock()
	defer mc.mux.Unlock()
	mc.lru.Add(key, margin)
}
