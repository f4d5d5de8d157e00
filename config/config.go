// Package config assembles match settings from defaults, an optional YAML
// file, a .env file and PAWNS_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"pawns/deck"
	"pawns/engine"
	"pawns/game"
	"pawns/meta"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Rows         int    `yaml:"rows"`
	Cols         int    `yaml:"cols"`
	HandSize     int    `yaml:"hand_size"`
	RedDeck      string `yaml:"red_deck"` // Empty for the bundled deck
	BlueDeck     string `yaml:"blue_deck"`
	RedStrategy  string `yaml:"red_strategy"`
	BlueStrategy string `yaml:"blue_strategy"`
	Shuffle      bool   `yaml:"shuffle"`
	Seed         uint64 `yaml:"seed"`
	MaxTurns     int    `yaml:"max_turns"`
	Games        int    `yaml:"games"`
	OutDir       string `yaml:"out_dir"`
	DrawPerTurn  bool   `yaml:"draw_per_turn"`
	MirrorBlue   bool   `yaml:"mirror_blue"`
}

func Default() Config {
	return Config{
		Rows:         meta.ROWS,
		Cols:         meta.COLS,
		HandSize:     meta.HAND_SIZE,
		RedStrategy:  meta.RED_STRATEGY,
		BlueStrategy: meta.BLUE_STRATEGY,
		Shuffle:      true,
		Seed:         1,
		MaxTurns:     meta.MAX_TURNS,
		Games:        meta.GAMES,
		OutDir:       meta.OUT_DIR,
		DrawPerTurn:  true,
	}
}

// Load builds the configuration. path names an optional YAML file and
// envFile an optional .env file; either may be empty or missing.
func Load(path, envFile string) (Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	c.Rows = getenvInt("ROWS", c.Rows)
	c.Cols = getenvInt("COLS", c.Cols)
	c.HandSize = getenvInt("HAND_SIZE", c.HandSize)
	c.RedDeck = getenvString("RED_DECK", c.RedDeck)
	c.BlueDeck = getenvString("BLUE_DECK", c.BlueDeck)
	c.RedStrategy = getenvString("RED_STRATEGY", c.RedStrategy)
	c.BlueStrategy = getenvString("BLUE_STRATEGY", c.BlueStrategy)
	c.Shuffle = getenvBool("SHUFFLE", c.Shuffle)
	c.Seed = uint64(getenvInt("SEED", int(c.Seed)))
	c.MaxTurns = getenvInt("MAX_TURNS", c.MaxTurns)
	c.Games = getenvInt("GAMES", c.Games)
	c.OutDir = getenvString("OUT_DIR", c.OutDir)
	c.DrawPerTurn = getenvBool("DRAW", c.DrawPerTurn)
	c.MirrorBlue = getenvBool("MIRROR_BLUE", c.MirrorBlue)
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(meta.ENV_PREFIX + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(meta.ENV_PREFIX + key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvString(key string, def string) string {
	if v := os.Getenv(meta.ENV_PREFIX + key); v != "" {
		return v
	}
	return def
}

// Validate checks the settings the board does not check itself.
func (c Config) Validate() error {
	switch {
	case c.MaxTurns <= 0:
		return &game.ConfigError{Field: "max turns", Reason: "must be positive"}
	case c.Games <= 0:
		return &game.ConfigError{Field: "games", Reason: "must be positive"}
	case c.RedStrategy == "" || c.BlueStrategy == "":
		return &game.ConfigError{Field: "strategy", Reason: "both players need one"}
	}
	return nil
}

func (c Config) BoardOptions() []game.Option {
	var options []game.Option
	if !c.DrawPerTurn {
		options = append(options, game.WithoutDraw())
	}
	if c.MirrorBlue {
		options = append(options, game.WithMirroredBlue())
	}
	return options
}

// Setup loads both decks and describes the board. gameIndex offsets the shuffle
// seed so every game of a tournament is dealt differently.
func (c Config) Setup(gameIndex int) (engine.Setup, error) {
	red, err := loadDeck(c.RedDeck)
	if err != nil {
		return engine.Setup{}, err
	}
	blue, err := loadDeck(c.BlueDeck)
	if err != nil {
		return engine.Setup{}, err
	}
	if c.Shuffle {
		seed := c.Seed + 2*uint64(gameIndex)
		red = deck.Shuffle(red, seed)
		blue = deck.Shuffle(blue, seed+1)
	}
	return engine.Setup{
		Rows:         c.Rows,
		Cols:         c.Cols,
		HandSize:     c.HandSize,
		RedDeck:      red,
		BlueDeck:     blue,
		BoardOptions: c.BoardOptions(),
	}, nil
}

func loadDeck(path string) ([]game.Card, error) {
	if path == "" {
		return deck.Default(), nil
	}
	return deck.Load(path)
}
