package game

// Content is what a cell currently holds.
type Content int

const (
	ContentEmpty Content = iota
	ContentPawns
	ContentCard
)

func (c Content) String() string {
	switch c {
	case ContentPawns:
		return "pawns"
	case ContentCard:
		return "card"
	default:
		return "empty"
	}
}

// MaxPawns is the most pawns a single cell can hold.
const MaxPawns = 3

// Cell is one square of the board. The zero value is an empty cell.
//
// A cell is owned iff it is not empty, holds pawns iff its pawn count is
// positive, and holds a card iff content is ContentCard. The value modifier is
// independent of content and survives every transition except card removal.
type Cell struct {
	content  Content
	owner    Player
	pawns    int
	card     Card
	modifier int
}

func (c Cell) Content() Content { return c.content }

// Owner returns NoPlayer for an empty cell.
func (c Cell) Owner() Player { return c.owner }

// Pawns returns 0 unless the cell holds pawns.
func (c Cell) Pawns() int { return c.pawns }

// Card returns the placed card, if any.
func (c Cell) Card() (Card, bool) {
	return c.card, c.content == ContentCard
}

func (c Cell) Modifier() int { return c.modifier }

// EffectiveValue is the card's value plus the modifier, floored at 0, or 0
// when no card is placed.
func (c Cell) EffectiveValue() int {
	if c.content != ContentCard {
		return 0
	}
	return max(0, c.card.Value+c.modifier)
}

// AddPawn adds one pawn for p, claiming the cell if it was empty.
func (c *Cell) AddPawn(p Player) error {
	switch c.content {
	case ContentCard:
		return ErrCellHoldsCard
	case ContentPawns:
		if c.owner != p {
			return ErrForeignPawns
		}
		if c.pawns >= MaxPawns {
			return ErrPawnsFull
		}
		c.pawns++
	default:
		c.content = ContentPawns
		c.owner = p
		c.pawns = 1
	}
	return nil
}

// ChangeOwnership hands the pawns to p without changing their count.
func (c *Cell) ChangeOwnership(p Player) error {
	if c.content != ContentPawns {
		return ErrCellNotPawns
	}
	c.owner = p
	return nil
}

// SetCard places card for owner, discarding any pawns. The modifier is kept.
func (c *Cell) SetCard(card Card, owner Player) {
	c.content = ContentCard
	c.owner = owner
	c.pawns = 0
	c.card = card
}

// Upgrade raises the modifier by n.
func (c *Cell) Upgrade(n int) error {
	if n < 0 {
		return ErrNegativeAmount
	}
	c.modifier += n
	return nil
}

// Devalue lowers the modifier by n. A card whose value drops to 0 or below is
// removed and its pawns restored; removed reports whether that happened.
func (c *Cell) Devalue(n int) (removed bool, err error) {
	if n < 0 {
		return false, ErrNegativeAmount
	}
	c.modifier -= n
	if c.content == ContentCard && c.card.Value+c.modifier <= 0 {
		return true, c.RemoveCardAndRestorePawns()
	}
	return false, nil
}

// RemoveCardAndRestorePawns turns a card cell back into pawns of the same
// owner, one per point of the card's cost up to MaxPawns, and clears the
// modifier.
func (c *Cell) RemoveCardAndRestorePawns() error {
	if c.content != ContentCard {
		return ErrCellNoCard
	}
	c.content = ContentPawns
	c.pawns = min(c.card.Cost, MaxPawns)
	c.card = Card{}
	c.ResetValueModifier()
	return nil
}

func (c *Cell) ResetValueModifier() {
	c.modifier = 0
}
