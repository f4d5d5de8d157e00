package strategy

import (
	"fmt"
	"strings"

	"pawns/game"
)

// Chain asks its strategies in order and plays the first placement any of
// them returns. When none places a card, the fallback decides.
type Chain struct {
	strategies []Strategy
	fallback   Strategy
}

func (c *Chain) ChooseMove(board game.ReadOnlyBoard) game.Move {
	for _, s := range c.strategies {
		if move := s.ChooseMove(board); move.IsPlacement() {
			return move
		}
	}
	return c.fallback.ChooseMove(board)
}

func (c *Chain) String() string {
	names := make([]string, 0, len(c.strategies)+1)
	for _, s := range c.strategies {
		names = append(names, fmt.Sprint(s))
	}
	names = append(names, fmt.Sprint(c.fallback))
	return strings.Join(names, ">")
}

// Factory assembles a Chain.
//
//	chain := NewFactory().Then(NewMaximizeRowScore()).Fallback(NewFillFirst()).Build()
type Factory struct {
	strategies []Strategy
	fallback   Strategy
}

func NewFactory() *Factory { return &Factory{} }

// Then appends a strategy to the chain.
func (f *Factory) Then(s Strategy) *Factory {
	if s != nil {
		f.strategies = append(f.strategies, s)
	}
	return f
}

// Fallback sets the strategy used when nothing in the chain places a card.
func (f *Factory) Fallback(s Strategy) *Factory {
	f.fallback = s
	return f
}

// Build returns the chain. Later changes to the factory do not affect it.
func (f *Factory) Build() *Chain {
	fallback := f.fallback
	if fallback == nil {
		fallback = AlwaysPass{}
	}
	strategies := make([]Strategy, len(f.strategies))
	copy(strategies, f.strategies)
	return &Chain{strategies: strategies, fallback: fallback}
}
