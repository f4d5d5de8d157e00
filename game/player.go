package game

// Player identifies a side of the board. The zero value is NoPlayer.
type Player int

const (
	NoPlayer Player = iota
	Red
	Blue
)

// Players lists both sides in turn order.
var Players = []Player{Red, Blue}

// Opponent returns the other side, or NoPlayer for NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	default:
		return "NONE"
	}
}
