package player

import (
	"errors"
	"fmt"

	"pawns/game"
	"pawns/strategy"

	"github.com/rs/zerolog/log"
)

// ErrNoStrategy is returned when a human-controlled player is asked to take
// an AI turn.
var ErrNoStrategy = errors.New("player has no strategy")

// Player acts for one side of a board, either through direct actions or,
// when it has a strategy, by replaying the strategy's decisions.
type Player struct {
	Color    game.Player
	Strategy strategy.Strategy // nil for a human
	board    game.MutableBoard
}

// Turn is the outcome of an AI turn.
type Turn struct {
	Chosen game.Move // What the strategy asked for
	Played game.Move // What reached the board
}

// Fallback reports whether the strategy's choice had to be replaced by a pass.
func (t Turn) Fallback() bool {
	return t.Chosen != t.Played
}

// NewPlayer creates a human-controlled player.
func NewPlayer(color game.Player, board game.MutableBoard) *Player {
	return &Player{
		Color: color,
		board: board,
	}
}

// NewAIPlayer creates a player that decides with s.
func NewAIPlayer(color game.Player, board game.MutableBoard, s strategy.Strategy) *Player {
	return &Player{
		Color:    color,
		Strategy: s,
		board:    board,
	}
}

func (p *Player) IsAI() bool {
	return p.Strategy != nil
}

func (p *Player) checkTurn() error {
	current, err := p.board.CurrentPlayer()
	if err != nil {
		return err
	}
	if current != p.Color {
		return fmt.Errorf("%s cannot act on %s's turn: %w", p.Color, current, game.ErrNotYourTurn)
	}
	return nil
}

// PlaceCard plays a card from this player's hand.
func (p *Player) PlaceCard(cardIndex, row, col int) error {
	if err := p.checkTurn(); err != nil {
		return err
	}
	return p.board.PlaceCard(cardIndex, row, col)
}

// Pass skips this player's turn.
func (p *Player) Pass() error {
	if err := p.checkTurn(); err != nil {
		return err
	}
	return p.board.PassTurn()
}

// TakeTurn asks the strategy for a move and plays it. A strategy that cannot
// decide, or picks a placement the board refuses, passes instead.
func (p *Player) TakeTurn() (Turn, error) {
	if !p.IsAI() {
		return Turn{}, ErrNoStrategy
	}
	if err := p.checkTurn(); err != nil {
		return Turn{}, err
	}

	chosen := p.Strategy.ChooseMove(p.board)
	if chosen.IsPlacement() {
		err := p.board.PlaceCard(chosen.CardIndex, chosen.Row, chosen.Col)
		if err == nil {
			return Turn{Chosen: chosen, Played: chosen}, nil
		}
		log.Debug().Err(err).Msgf("%s could not %s, passing", p.Color, chosen)
	} else if chosen.Kind == game.MoveEmpty {
		log.Debug().Msgf("%s has no move, passing", p.Color)
	}

	if err := p.board.PassTurn(); err != nil {
		return Turn{}, err
	}
	return Turn{Chosen: chosen, Played: game.Pass()}, nil
}
