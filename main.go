package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"pawns/config"
	"pawns/engine"
	"pawns/experiments"
	"pawns/experiments/metrics"
	"pawns/strategy"
	"pawns/view"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envFile := flag.String("env", ".env", "Environment file with PAWNS_* overrides")
	red := flag.String("red", "", "RED strategy, e.g. maxrow>control>fillfirst")
	blue := flag.String("blue", "", "BLUE strategy")
	games := flag.Int("games", 0, "Number of games; more than one runs a tournament")
	out := flag.String("out", "", "Directory for tournament CSV files")
	seed := flag.Uint64("seed", 0, "Seed for shuffling and random strategies")
	roundRobin := flag.String("roundrobin", "", "Comma-separated strategies to play against each other")
	quiet := flag.Bool("quiet", false, "Only log warnings and errors")
	verbose := flag.Bool("verbose", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	} else if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	// Flags win over every other source
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "red":
			cfg.RedStrategy = *red
		case "blue":
			cfg.BlueStrategy = *blue
		case "games":
			cfg.Games = *games
		case "out":
			cfg.OutDir = *out
		case "seed":
			cfg.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	switch {
	case *roundRobin != "":
		runTournament("round_robin", cfg, experiments.RoundRobin(strings.Split(*roundRobin, ",")))
	case cfg.Games > 1:
		runTournament("head_to_head", cfg, experiments.HeadToHead(cfg))
	default:
		runMatch(cfg)
	}
}

func runMatch(cfg config.Config) {
	setup, err := cfg.Setup(0)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load decks")
	}
	red, err := strategy.Parse(cfg.RedStrategy, cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid RED strategy")
	}
	blue, err := strategy.Parse(cfg.BlueStrategy, cfg.Seed+1)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid BLUE strategy")
	}

	e, err := engine.LocalEngine(setup, red, blue, engine.WithMaxTurns(cfg.MaxTurns))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start match")
	}
	if _, err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}
	fmt.Print(view.String(e.Board()))
}

func runTournament(name string, cfg config.Config, matchUps []metrics.MatchUp) {
	summary, err := experiments.RunTournament(name, cfg, matchUps)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
	for _, s := range summary.Standings {
		fmt.Printf("%-30s vs %-30s red %3d  blue %3d  draws %3d\n", s.MatchUp.Red, s.MatchUp.Blue, s.RedWins, s.BlueWins, s.Draws)
	}
	fmt.Printf("records written to %s\n", summary.Dir)
}
