package game

import "fmt"

// MoveKind tags a Move.
type MoveKind int

const (
	// MoveEmpty means a strategy could not decide. It is never played.
	MoveEmpty MoveKind = iota
	MovePass
	MovePlaceCard
)

func (k MoveKind) String() string {
	switch k {
	case MovePass:
		return "pass"
	case MovePlaceCard:
		return "place"
	default:
		return "empty"
	}
}

// Move is a decision returned by a strategy. CardIndex, Row and Col are only
// meaningful for MovePlaceCard. The zero value is an empty move.
type Move struct {
	Kind      MoveKind
	CardIndex int
	Row       int
	Col       int
}

func Place(cardIndex, row, col int) Move {
	return Move{Kind: MovePlaceCard, CardIndex: cardIndex, Row: row, Col: col}
}

func Pass() Move {
	return Move{Kind: MovePass}
}

func Empty() Move {
	return Move{}
}

func (m Move) IsPlacement() bool {
	return m.Kind == MovePlaceCard
}

func (m Move) String() string {
	if m.Kind == MovePlaceCard {
		return fmt.Sprintf("place card %d at (%d,%d)", m.CardIndex, m.Row, m.Col)
	}
	return m.Kind.String()
}

// Apply plays the move on b. An empty move changes nothing.
func (m Move) Apply(b MutableBoard) error {
	switch m.Kind {
	case MovePlaceCard:
		return b.PlaceCard(m.CardIndex, m.Row, m.Col)
	case MovePass:
		return b.PassTurn()
	default:
		return nil
	}
}
