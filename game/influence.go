package game

// Influence codes understood by DefaultCatalog.
const (
	CodeRegular   = 'I'
	CodeUpgrading = 'U'
	CodeDevaluing = 'D'
	CodeBlank     = 'X'
	CodeCenter    = 'C'
)

// Influence is the effect one grid code has on a target cell. Apply must not
// keep state: it receives a copy of the cell and returns the updated copy,
// with applied reporting whether anything changed.
type Influence interface {
	Apply(cell Cell, by Player) (updated Cell, applied bool)
}

// InfluenceFunc adapts a function to Influence.
type InfluenceFunc func(cell Cell, by Player) (Cell, bool)

func (f InfluenceFunc) Apply(cell Cell, by Player) (Cell, bool) {
	return f(cell, by)
}

// Catalog maps grid codes to their influence.
type Catalog map[rune]Influence

// DefaultCatalog returns a fresh catalog with the standard codes.
func DefaultCatalog() Catalog {
	return Catalog{
		CodeRegular:   InfluenceFunc(regular),
		CodeUpgrading: InfluenceFunc(upgrading),
		CodeDevaluing: InfluenceFunc(devaluing),
		CodeBlank:     InfluenceFunc(blank),
		CodeCenter:    InfluenceFunc(blank),
	}
}

// regular claims empty cells, adds to own pawns and converts enemy pawns.
func regular(cell Cell, by Player) (Cell, bool) {
	var err error
	switch {
	case cell.Content() == ContentEmpty, cell.Content() == ContentPawns && cell.Owner() == by:
		err = cell.AddPawn(by)
	case cell.Content() == ContentPawns:
		err = cell.ChangeOwnership(by)
	default:
		return cell, false
	}
	return cell, err == nil
}

func upgrading(cell Cell, _ Player) (Cell, bool) {
	err := cell.Upgrade(1)
	return cell, err == nil
}

func devaluing(cell Cell, _ Player) (Cell, bool) {
	_, err := cell.Devalue(1)
	return cell, err == nil
}

func blank(cell Cell, _ Player) (Cell, bool) {
	return cell, false
}
