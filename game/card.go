package game

import (
	"fmt"
	"strings"
)

// GridSize is the side length of a card's influence grid.
const GridSize = 5

const gridCenter = GridSize / 2

// Grid holds a card's influence codes. Grid[gridCenter][gridCenter] is the
// card's own cell.
type Grid [GridSize][GridSize]rune

// ParseGrid builds a grid from five rows of five codes.
func ParseGrid(rows []string) (Grid, error) {
	var g Grid
	if len(rows) != GridSize {
		return g, fmt.Errorf("grid needs %d rows, got %d", GridSize, len(rows))
	}
	for r, row := range rows {
		codes := []rune(strings.TrimSpace(row))
		if len(codes) != GridSize {
			return g, fmt.Errorf("grid row %d needs %d codes, got %d", r, GridSize, len(codes))
		}
		copy(g[r][:], codes)
	}
	return g, nil
}

// Mirrored flips the grid left to right.
func (g Grid) Mirrored() Grid {
	var m Grid
	for r := range g {
		for c := range g[r] {
			m[r][GridSize-1-c] = g[r][c]
		}
	}
	return m
}

func (g Grid) String() string {
	var sb strings.Builder
	for r := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(g[r][:]))
	}
	return sb.String()
}

const (
	MinCost = 1
	MaxCost = 3
)

// Card is an immutable playing card.
type Card struct {
	Name  string
	Cost  int
	Value int
	Grid  Grid
}

// Validate checks the card against the catalog that will interpret its grid.
func (c Card) Validate(catalog Catalog) error {
	if c.Name == "" {
		return &ConfigError{Field: "card", Reason: "missing name"}
	}
	if c.Cost < MinCost || c.Cost > MaxCost {
		return &ConfigError{Field: "card " + c.Name, Reason: fmt.Sprintf("cost %d outside %d..%d", c.Cost, MinCost, MaxCost)}
	}
	if c.Grid[gridCenter][gridCenter] != CodeCenter {
		return &ConfigError{Field: "card " + c.Name, Reason: fmt.Sprintf("grid center must be %q", CodeCenter)}
	}
	for r := range c.Grid {
		for col, code := range c.Grid[r] {
			if _, ok := catalog[code]; !ok {
				return &ConfigError{Field: "card " + c.Name, Reason: fmt.Sprintf("unknown influence code %q at (%d,%d)", code, r, col)}
			}
		}
	}
	return nil
}

func (c Card) String() string {
	return fmt.Sprintf("%s %d %d", c.Name, c.Cost, c.Value)
}
