// Package view renders boards as plain text.
//
// Each board row becomes one line: RED's row score, the cells, then BLUE's
// row score. A cell is ".." when empty, a lower-case owner letter and pawn
// count for pawns ("r2"), or an upper-case owner letter and effective value
// for a card ("B5").
package view

import (
	"bytes"
	"fmt"
	"io"

	"pawns/game"
)

// Cell returns the two-character token for a cell.
func Cell(cell game.Cell) string {
	switch cell.Content() {
	case game.ContentPawns:
		return fmt.Sprintf("%c%d", ownerLetter(cell.Owner())+'a'-'A', cell.Pawns())
	case game.ContentCard:
		value := cell.EffectiveValue()
		if value > 9 {
			return fmt.Sprintf("%c+", ownerLetter(cell.Owner()))
		}
		return fmt.Sprintf("%c%d", ownerLetter(cell.Owner()), value)
	default:
		return ".."
	}
}

func ownerLetter(p game.Player) rune {
	if p == game.Blue {
		return 'B'
	}
	return 'R'
}

// Board writes the rows of b followed by the total score and whose turn it
// is, or the winner once the game is over.
func Board(w io.Writer, b game.ReadOnlyBoard) error {
	var buf bytes.Buffer
	if !b.IsStarted() {
		fmt.Fprintln(&buf, "(not started)")
		_, err := w.Write(buf.Bytes())
		return err
	}

	for r := 0; r < b.Rows(); r++ {
		score, err := b.RowScore(r)
		if err != nil {
			return err
		}
		fmt.Fprintf(&buf, "%3d |", score.Red)
		for c := 0; c < b.Cols(); c++ {
			cell, err := b.CellAt(r, c)
			if err != nil {
				return err
			}
			fmt.Fprintf(&buf, " %s", Cell(cell))
		}
		fmt.Fprintf(&buf, " | %d\n", score.Blue)
	}

	total, err := b.TotalScore()
	if err != nil {
		return err
	}
	fmt.Fprintf(&buf, "RED %d - BLUE %d", total.Red, total.Blue)
	if b.IsOver() {
		winner, err := b.Winner()
		if err != nil {
			return err
		}
		if winner == game.NoPlayer {
			fmt.Fprint(&buf, ", draw\n")
		} else {
			fmt.Fprintf(&buf, ", %s wins\n", winner)
		}
	} else {
		current, err := b.CurrentPlayer()
		if err != nil {
			return err
		}
		fmt.Fprintf(&buf, ", %s to play\n", current)
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// String renders b, reporting a failure in place of the board.
func String(b game.ReadOnlyBoard) string {
	var buf bytes.Buffer
	if err := Board(&buf, b); err != nil {
		return fmt.Sprintf("(unreadable board: %v)", err)
	}
	return buf.String()
}

// Hand lists cards as "index:name(cost/value)".
func Hand(cards []game.Card) string {
	var buf bytes.Buffer
	for i, card := range cards {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d:%s(%d/%d)", i, card.Name, card.Cost, card.Value)
	}
	return buf.String()
}
