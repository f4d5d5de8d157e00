package game

import (
	"errors"
	"fmt"
)

// State errors. They are returned unwrapped so callers can compare with errors.Is.
var (
	ErrNotStarted     = errors.New("game has not started")
	ErrAlreadyStarted = errors.New("game has already started")
	ErrGameOver       = errors.New("game is over")
	ErrGameNotOver    = errors.New("game is not over")
	ErrNotYourTurn    = errors.New("not this player's turn")
)

// Cell errors.
var (
	ErrCellHoldsCard  = errors.New("cell holds a card")
	ErrCellNotPawns   = errors.New("cell does not hold pawns")
	ErrCellNoCard     = errors.New("cell holds no card")
	ErrPawnsFull      = errors.New("cell already holds the maximum number of pawns")
	ErrForeignPawns   = errors.New("cell pawns belong to the other player")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// AccessError reports a target cell that cannot take the card: it holds no
// pawns, or fewer pawns than the card costs.
type AccessError struct {
	Row, Col  int
	Content   Content
	Required  int
	Available int
}

func (e *AccessError) Error() string {
	if e.Content != ContentPawns {
		return fmt.Sprintf("cannot place card at (%d,%d): cell holds %s", e.Row, e.Col, e.Content)
	}
	return fmt.Sprintf("cannot place card at (%d,%d): requires %d pawns, cell has %d",
		e.Row, e.Col, e.Required, e.Available)
}

// OwnershipError reports pawns that belong to the other player.
type OwnershipError struct {
	Row, Col int
	Owner    Player
	Player   Player
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("cannot place card at (%d,%d): pawns belong to %s, not %s",
		e.Row, e.Col, e.Owner, e.Player)
}

// CardIndexError reports a hand index outside the current hand.
type CardIndexError struct {
	Index    int
	HandSize int
}

func (e *CardIndexError) Error() string {
	return fmt.Sprintf("card index %d out of range for hand of %d", e.Index, e.HandSize)
}

// ConfigError reports an invalid board shape, hand size or card at game start.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BoundsError reports coordinates outside the grid.
type BoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) is outside the %dx%d board", e.Row, e.Col, e.Rows, e.Cols)
}
