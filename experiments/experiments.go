package experiments

import (
	"fmt"

	"pawns/config"
	"pawns/engine"
	"pawns/experiments/metrics"
	"pawns/game"
	"pawns/strategy"

	"github.com/rs/zerolog/log"
)

// Standing tallies the results of one match-up.
type Standing struct {
	MatchUp    metrics.MatchUp
	RedWins    int
	BlueWins   int
	Draws      int
	Unfinished int
}

func (s Standing) Games() int {
	return s.RedWins + s.BlueWins + s.Draws + s.Unfinished
}

type Summary struct {
	Dir       string // Where the records were written
	Standings []Standing
}

// HeadToHead is the single match-up of the configured strategies.
func HeadToHead(cfg config.Config) []metrics.MatchUp {
	return []metrics.MatchUp{{ID: 1, Red: cfg.RedStrategy, Blue: cfg.BlueStrategy}}
}

// RoundRobin pairs every strategy with every other one, once as RED and once
// as BLUE.
func RoundRobin(strategies []string) []metrics.MatchUp {
	matchUps := []metrics.MatchUp{}
	for _, red := range strategies {
		for _, blue := range strategies {
			if red == blue {
				continue
			}
			matchUps = append(matchUps, metrics.MatchUp{ID: len(matchUps) + 1, Red: red, Blue: blue})
		}
	}
	return matchUps
}

// RunTournament plays cfg.Games games of every match-up and writes the
// match-ups, game records and move records as CSV under cfg.OutDir.
func RunTournament(name string, cfg config.Config, matchUps []metrics.MatchUp) (Summary, error) {
	// Fail on unknown names before any game is played
	for _, m := range matchUps {
		for _, s := range []string{m.Red, m.Blue} {
			if _, err := strategy.Parse(s, cfg.Seed); err != nil {
				return Summary{}, fmt.Errorf("match-up %d: %w", m.ID, err)
			}
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	standings := make([]Standing, len(matchUps))

	log.Info().Msgf("starting %s tournament...", name)

	for mi, matchUp := range matchUps {
		standings[mi].MatchUp = matchUp
		log.Info().Msgf("starting matchup %d of %d between red=%s and blue=%s...", mi+1, len(matchUps), matchUp.Red, matchUp.Blue)

		for i := 0; i < cfg.Games; i++ {
			result, err := runGame(cfg, matchUp, count)
			if err != nil {
				return Summary{}, fmt.Errorf("matchup %d game %d: %w", matchUp.ID, i+1, err)
			}
			count++
			tally(&standings[mi], result)

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				MatchUp:    matchUp.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Str("match", result.Match).Msgf("completed matchup %d game %d of %d with winner: %s", mi+1, i+1, cfg.Games, result.Winner)
		}
		s := standings[mi]
		log.Info().Msgf("completed matchup %d of %d: red %d, blue %d, draws %d", mi+1, len(matchUps), s.RedWins, s.BlueWins, s.Draws)
	}

	log.Info().Msgf("completed %s tournament", name)

	dir, err := store(name, cfg.OutDir, matchUps, gameRecords, moveRecords)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Dir: dir, Standings: standings}, nil
}

func tally(s *Standing, result engine.Result) {
	switch {
	case !result.Finished:
		s.Unfinished++
	case result.Winner == game.Red:
		s.RedWins++
	case result.Winner == game.Blue:
		s.BlueWins++
	default:
		s.Draws++
	}
}

// runGame plays one game. index numbers the game across the tournament and
// varies the deal and the random strategies.
func runGame(cfg config.Config, matchUp metrics.MatchUp, index int) (engine.Result, error) {
	setup, err := cfg.Setup(index)
	if err != nil {
		return engine.Result{}, err
	}
	seed := cfg.Seed + 2*uint64(index)
	red, err := strategy.Parse(matchUp.Red, seed)
	if err != nil {
		return engine.Result{}, err
	}
	blue, err := strategy.Parse(matchUp.Blue, seed+1)
	if err != nil {
		return engine.Result{}, err
	}

	e, err := engine.LocalEngine(setup, red, blue, engine.WithMaxTurns(cfg.MaxTurns), engine.WithMetrics())
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run()
}

func store(name, outDir string, matchUps []metrics.MatchUp, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteMatchUps(matchUps); err != nil {
		return "", fmt.Errorf("failed to store match-ups: %w", err)
	}
	log.Info().Msg("stored match-ups")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
