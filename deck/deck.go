// Package deck reads card decks from text or YAML sources.
//
// The text format is a sequence of blocks, one per card: a header line
// "NAME COST VALUE" followed by five rows of five influence codes. Blank lines
// and lines starting with '#' are ignored.
package deck

import (
	"bufio"
	"embed"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pawns/game"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"
)

//go:embed decks
var decksFS embed.FS

const defaultDeck = "decks/default.deck"

// Default returns the bundled standard deck.
func Default() []game.Card {
	f, err := decksFS.Open(defaultDeck)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	cards, err := Parse(f)
	if err != nil {
		panic(err)
	}
	return cards
}

// Load reads a deck file, choosing the format by extension.
func Load(path string) ([]game.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open deck %s", path)
	}
	defer f.Close()

	var cards []game.Card
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cards, err = ParseYAML(f)
	default:
		cards, err = Parse(f)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to read deck %s", path)
	}
	return cards, nil
}

// Parse reads a deck in the text format.
func Parse(r io.Reader) ([]game.Card, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	var cards []game.Card
	for {
		header, ok := next()
		if !ok {
			break
		}
		headerLine := lineNo
		card, err := parseHeader(header)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", headerLine)
		}

		rows := make([]string, 0, game.GridSize)
		for len(rows) < game.GridSize {
			row, ok := next()
			if !ok {
				return nil, errors.Errorf("line %d: card %s ends before its grid is complete", lineNo, card.Name)
			}
			rows = append(rows, row)
		}
		card.Grid, err = game.ParseGrid(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "card %s at line %d", card.Name, headerLine)
		}
		if err := check(card); err != nil {
			return nil, errors.WithMessagef(err, "card %s at line %d", card.Name, headerLine)
		}
		cards = append(cards, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read deck")
	}
	return cards, nil
}

func parseHeader(line string) (game.Card, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return game.Card{}, errors.Errorf("expected \"NAME COST VALUE\", got %q", line)
	}
	cost, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Card{}, errors.Wrapf(err, "failed to parse cost %q", fields[1])
	}
	value, err := strconv.Atoi(fields[2])
	if err != nil {
		return game.Card{}, errors.Wrapf(err, "failed to parse value %q", fields[2])
	}
	return game.Card{Name: fields[0], Cost: cost, Value: value}, nil
}

type yamlDeck struct {
	Cards []yamlCard `yaml:"cards"`
}

type yamlCard struct {
	Name  string   `yaml:"name"`
	Cost  int      `yaml:"cost"`
	Value int      `yaml:"value"`
	Grid  []string `yaml:"grid"`
}

// ParseYAML reads a deck of the form
//
//	cards:
//	  - name: Security
//	    cost: 1
//	    value: 2
//	    grid: [XXXXX, XXIXX, XICIX, XXIXX, XXXXX]
func ParseYAML(r io.Reader) ([]game.Card, error) {
	var d yamlDeck
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(err, "failed to decode YAML deck")
	}
	cards := make([]game.Card, 0, len(d.Cards))
	for i, yc := range d.Cards {
		grid, err := game.ParseGrid(yc.Grid)
		if err != nil {
			return nil, errors.Wrapf(err, "card %d (%s)", i, yc.Name)
		}
		card := game.Card{Name: yc.Name, Cost: yc.Cost, Value: yc.Value, Grid: grid}
		if err := check(card); err != nil {
			return nil, errors.WithMessagef(err, "card %d (%s)", i, yc.Name)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// check applies the deck-level rules on top of the engine's own validation.
func check(card game.Card) error {
	if card.Value <= 0 {
		return errors.Errorf("value %d must be positive", card.Value)
	}
	return card.Validate(game.DefaultCatalog())
}

// Shuffle returns a shuffled copy of cards. The same seed always gives the
// same order.
func Shuffle(cards []game.Card, seed uint64) []game.Card {
	shuffled := make([]game.Card, len(cards))
	copy(shuffled, cards)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
