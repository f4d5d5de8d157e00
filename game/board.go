package game

import (
	"encoding/binary"
	"hash/fnv"
	"slices"
)

type phase int

const (
	notStarted phase = iota
	inProgress
	over
)

// consecutivePassesToEnd is the number of passes in a row that ends the game.
const consecutivePassesToEnd = 2

// Option configures a Board.
type Option func(b *Board)

// WithCatalog replaces the default influence catalog.
func WithCatalog(catalog Catalog) Option {
	return func(b *Board) {
		if catalog != nil {
			b.catalog = catalog
		}
	}
}

// WithMirroredBlue flips BLUE's influence grids left to right when applied.
func WithMirroredBlue() Option {
	return func(b *Board) {
		b.mirrorBlue = true
	}
}

// WithoutDraw stops players drawing a card at the start of their turn.
func WithoutDraw() Option {
	return func(b *Board) {
		b.drawPerTurn = false
	}
}

// Board is the game engine. It is not safe for concurrent use; callers
// serialize PlaceCard and PassTurn.
type Board struct {
	catalog     Catalog
	mirrorBlue  bool
	drawPerTurn bool

	rows    int
	cols    int
	cells   [][]Cell
	hands   map[Player][]Card
	decks   map[Player][]Card
	current Player
	passes  int // Consecutive passes
	phase   phase
}

var _ MutableBoard = (*Board)(nil)

// NewBoard returns a board waiting for StartGame.
func NewBoard(options ...Option) *Board {
	b := &Board{ // Default values
		catalog:     DefaultCatalog(),
		drawPerTurn: true,
		hands:       map[Player][]Card{},
		decks:       map[Player][]Card{},
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// StartGame shapes the grid, deals opening hands from the decks and seeds the
// first column with RED pawns and the last column with BLUE pawns.
func (b *Board) StartGame(rows, cols int, redDeck, blueDeck []Card, handSize int) error {
	if b.phase != notStarted {
		return ErrAlreadyStarted
	}
	if rows <= 0 {
		return &ConfigError{Field: "rows", Reason: "must be positive"}
	}
	if cols <= 1 || cols%2 == 0 {
		return &ConfigError{Field: "cols", Reason: "must be odd and greater than 1"}
	}
	if handSize <= 0 {
		return &ConfigError{Field: "hand size", Reason: "must be positive"}
	}
	decks := map[Player][]Card{Red: redDeck, Blue: blueDeck}
	for _, p := range Players {
		deck := decks[p]
		if handSize > len(deck)/3 {
			return &ConfigError{Field: "hand size", Reason: p.String() + " deck must hold at least three times the hand size"}
		}
		for _, card := range deck {
			if err := card.Validate(b.catalog); err != nil {
				return err
			}
		}
	}

	b.rows, b.cols = rows, cols
	b.cells = make([][]Cell, rows)
	for r := range b.cells {
		b.cells[r] = make([]Cell, cols)
		_ = b.cells[r][0].AddPawn(Red)
		_ = b.cells[r][cols-1].AddPawn(Blue)
	}
	for _, p := range Players {
		deck := slices.Clone(decks[p])
		b.hands[p] = deck[:handSize:handSize]
		b.decks[p] = deck[handSize:]
	}
	b.current = Red
	b.passes = 0
	b.phase = inProgress
	return nil
}

func (b *Board) IsStarted() bool { return b.phase != notStarted }

func (b *Board) IsOver() bool { return b.phase == over }

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) readable() error {
	if b.phase == notStarted {
		return ErrNotStarted
	}
	return nil
}

func (b *Board) playable() error {
	switch b.phase {
	case notStarted:
		return ErrNotStarted
	case over:
		return ErrGameOver
	}
	return nil
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) checkBounds(row, col int) error {
	if !b.inBounds(row, col) {
		return &BoundsError{Row: row, Col: col, Rows: b.rows, Cols: b.cols}
	}
	return nil
}

func (b *Board) CurrentPlayer() (Player, error) {
	if err := b.readable(); err != nil {
		return NoPlayer, err
	}
	return b.current, nil
}

// CellAt returns a copy of the cell; changing it does not affect the board.
func (b *Board) CellAt(row, col int) (Cell, error) {
	if err := b.readable(); err != nil {
		return Cell{}, err
	}
	if err := b.checkBounds(row, col); err != nil {
		return Cell{}, err
	}
	return b.cells[row][col], nil
}

// Hand returns a copy of p's hand.
func (b *Board) Hand(p Player) ([]Card, error) {
	if err := b.readable(); err != nil {
		return nil, err
	}
	return slices.Clone(b.hands[p]), nil
}

func (b *Board) DeckSize(p Player) (int, error) {
	if err := b.readable(); err != nil {
		return 0, err
	}
	return len(b.decks[p]), nil
}

// CheckMove validates a placement by the current player without making it.
func (b *Board) CheckMove(cardIndex, row, col int) error {
	if err := b.playable(); err != nil {
		return err
	}
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	hand := b.hands[b.current]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return &CardIndexError{Index: cardIndex, HandSize: len(hand)}
	}
	cell := b.cells[row][col]
	if cell.Content() != ContentPawns {
		return &AccessError{Row: row, Col: col, Content: cell.Content(), Required: hand[cardIndex].Cost}
	}
	if cell.Owner() != b.current {
		return &OwnershipError{Row: row, Col: col, Owner: cell.Owner(), Player: b.current}
	}
	if cost := hand[cardIndex].Cost; cell.Pawns() < cost {
		return &AccessError{Row: row, Col: col, Content: ContentPawns, Required: cost, Available: cell.Pawns()}
	}
	return nil
}

// PlaceCard plays a card from the current player's hand onto one of their
// pawn cells, applies its influence and hands the turn over.
func (b *Board) PlaceCard(cardIndex, row, col int) error {
	if err := b.CheckMove(cardIndex, row, col); err != nil {
		return err
	}
	player := b.current
	hand := b.hands[player]
	card := hand[cardIndex]
	b.hands[player] = append(hand[:cardIndex], hand[cardIndex+1:]...)

	cell := &b.cells[row][col]
	cell.SetCard(card, player)
	b.spread(card, player, row, col)
	// The cell may already carry enough devaluation to sink the card.
	if cell.Content() == ContentCard && card.Value+cell.Modifier() <= 0 {
		_ = cell.RemoveCardAndRestorePawns()
	}

	b.passes = 0
	b.nextTurn()
	return nil
}

// spread applies every code of the card's grid around (row, col), skipping
// the card's own cell and anything off the board.
func (b *Board) spread(card Card, player Player, row, col int) {
	grid := card.Grid
	if b.mirrorBlue && player == Blue {
		grid = grid.Mirrored()
	}
	for gr := range grid {
		for gc, code := range grid[gr] {
			if gr == gridCenter && gc == gridCenter {
				continue
			}
			r, c := row+gr-gridCenter, col+gc-gridCenter
			if !b.inBounds(r, c) {
				continue
			}
			influence, ok := b.catalog[code]
			if !ok {
				continue
			}
			if updated, applied := influence.Apply(b.cells[r][c], player); applied {
				b.cells[r][c] = updated
			}
		}
	}
}

// PassTurn skips the current player's turn. The second pass in a row ends
// the game.
func (b *Board) PassTurn() error {
	if err := b.playable(); err != nil {
		return err
	}
	b.passes++
	if b.passes >= consecutivePassesToEnd {
		b.phase = over
	}
	b.nextTurn()
	return nil
}

func (b *Board) nextTurn() {
	b.current = b.current.Opponent()
	if b.phase == inProgress && b.drawPerTurn {
		b.draw(b.current)
	}
}

func (b *Board) draw(p Player) {
	deck := b.decks[p]
	if len(deck) == 0 {
		return
	}
	b.hands[p] = append(b.hands[p], deck[0])
	b.decks[p] = deck[1:]
}

func (b *Board) rowScore(row int) Score {
	var s Score
	for _, cell := range b.cells[row] {
		switch cell.Owner() {
		case Red:
			s.Red += cell.EffectiveValue()
		case Blue:
			s.Blue += cell.EffectiveValue()
		}
	}
	return s
}

// RowScore returns each player's raw card total in the row.
func (b *Board) RowScore(row int) (Score, error) {
	if err := b.readable(); err != nil {
		return Score{}, err
	}
	if err := b.checkBounds(row, 0); err != nil {
		return Score{}, err
	}
	return b.rowScore(row), nil
}

// TotalScore credits each row to the player with the strictly higher row
// score. Tied rows count for nobody.
func (b *Board) TotalScore() (Score, error) {
	if err := b.readable(); err != nil {
		return Score{}, err
	}
	var total Score
	for r := range b.cells {
		s := b.rowScore(r)
		switch {
		case s.Red > s.Blue:
			total.Red += s.Red
		case s.Blue > s.Red:
			total.Blue += s.Blue
		}
	}
	return total, nil
}

// Winner returns the player with the higher total, or NoPlayer on a tie.
func (b *Board) Winner() (Player, error) {
	if err := b.readable(); err != nil {
		return NoPlayer, err
	}
	if b.phase != over {
		return NoPlayer, ErrGameNotOver
	}
	total, _ := b.TotalScore()
	switch {
	case total.Red > total.Blue:
		return Red, nil
	case total.Blue > total.Red:
		return Blue, nil
	default:
		return NoPlayer, nil
	}
}

// OwnedCells counts cells owned by p, pawns and cards alike.
func (b *Board) OwnedCells(p Player) (int, error) {
	if err := b.readable(); err != nil {
		return 0, err
	}
	count := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.Owner() == p {
				count++
			}
		}
	}
	return count, nil
}

// Copy returns a deep copy sharing only the stateless catalog.
func (b *Board) Copy() MutableBoard {
	cellsCopy := make([][]Cell, len(b.cells))
	for r, row := range b.cells {
		cellsCopy[r] = slices.Clone(row)
	}

	handsCopy := make(map[Player][]Card, len(b.hands))
	for p, hand := range b.hands {
		handsCopy[p] = slices.Clone(hand)
	}

	decksCopy := make(map[Player][]Card, len(b.decks))
	for p, deck := range b.decks {
		decksCopy[p] = slices.Clone(deck)
	}

	return &Board{
		catalog:     b.catalog, // Influences are stateless
		mirrorBlue:  b.mirrorBlue,
		drawPerTurn: b.drawPerTurn,
		rows:        b.rows,
		cols:        b.cols,
		cells:       cellsCopy,
		hands:       handsCopy,
		decks:       decksCopy,
		current:     b.current,
		passes:      b.passes,
		phase:       b.phase,
	}
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	write := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}

	write(int(b.phase))
	write(int(b.current))
	write(b.passes)
	write(b.rows)
	write(b.cols)

	for _, row := range b.cells {
		for _, cell := range row {
			write(int(cell.content))
			write(int(cell.owner))
			write(cell.pawns)
			write(cell.modifier)
			if cell.content == ContentCard {
				hasher.Write([]byte(cell.card.Name))
				write(cell.card.Value)
			}
		}
	}

	for _, p := range Players {
		write(len(b.hands[p]))
		for _, card := range b.hands[p] {
			hasher.Write([]byte(card.Name))
			hasher.Write([]byte{0})
		}
		write(len(b.decks[p]))
	}

	return StateHash(hasher.Sum64())
}
