package game

type StateHash uint64

// Score holds one number per player.
type Score struct {
	Red  int
	Blue int
}

// Of returns p's entry, or 0 for NoPlayer.
func (s Score) Of(p Player) int {
	switch p {
	case Red:
		return s.Red
	case Blue:
		return s.Blue
	default:
		return 0
	}
}

// ReadOnlyBoard is the view handed to strategies and views. Copy returns an
// independent board, so simulations on it never reach the original.
type ReadOnlyBoard interface {
	IsStarted() bool
	IsOver() bool
	// Rows and Cols are 0 before the game starts.
	Rows() int
	Cols() int
	CurrentPlayer() (Player, error)
	CellAt(row, col int) (Cell, error)
	Hand(p Player) ([]Card, error)
	DeckSize(p Player) (int, error)
	RowScore(row int) (Score, error)
	TotalScore() (Score, error)
	Winner() (Player, error)
	OwnedCells(p Player) (int, error)
	// CheckMove reports why the current player could not place the card, or
	// nil if the placement is legal.
	CheckMove(cardIndex, row, col int) error
	Hash() StateHash
	Copy() MutableBoard
}

// MutableBoard adds the operations that change the game.
type MutableBoard interface {
	ReadOnlyBoard
	StartGame(rows, cols int, redDeck, blueDeck []Card, handSize int) error
	PlaceCard(cardIndex, row, col int) error
	PassTurn() error
}
