package strategy

import (
	"fmt"
	"strings"

	"pawns/meta"
)

const chainSeparator = ">"

// Parse builds a strategy from its name: fillfirst, maxrow, control, random,
// pass, minimax or minimax:<opponent>. Minimax caches its projections unless
// the opponent is random. Names joined by ">" form a chain whose
// last element is the fallback, e.g. "maxrow>control>fillfirst". The seed
// feeds random strategies.
func Parse(name string, seed uint64) (Strategy, error) {
	parts := strings.Split(name, chainSeparator)
	if len(parts) == 1 {
		return parseOne(parts[0], seed)
	}
	factory := NewFactory()
	for i, part := range parts {
		s, err := parseOne(part, seed+uint64(i))
		if err != nil {
			return nil, fmt.Errorf("chain %q: %w", name, err)
		}
		if i == len(parts)-1 {
			factory.Fallback(s)
		} else {
			factory.Then(s)
		}
	}
	return factory.Build(), nil
}

func parseOne(name string, seed uint64) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	base, arg, hasArg := strings.Cut(name, ":")
	if hasArg && base != "minimax" {
		return nil, fmt.Errorf("strategy %q takes no argument", base)
	}
	switch base {
	case "fillfirst":
		return NewFillFirst(), nil
	case "maxrow":
		return NewMaximizeRowScore(), nil
	case "control":
		return NewControlBoard(), nil
	case "random":
		return NewRandom(seed), nil
	case "pass":
		return AlwaysPass{}, nil
	case "minimax":
		if !hasArg {
			return NewMinimax(nil, WithCache(meta.MINIMAX_CACHE)), nil
		}
		opponent, err := parseOne(arg, seed)
		if err != nil {
			return nil, fmt.Errorf("minimax opponent: %w", err)
		}
		if arg == "random" {
			return NewMinimax(opponent), nil
		}
		return NewMinimax(opponent, WithCache(meta.MINIMAX_CACHE)), nil
	case "":
		return nil, fmt.Errorf("empty strategy name")
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
