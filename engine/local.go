package engine

import (
	"fmt"
	"time"

	"pawns/experiments/metrics"
	"pawns/game"
	"pawns/player"
	"pawns/strategy"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Setup describes the board a match is played on.
type Setup struct {
	Rows         int
	Cols         int
	HandSize     int
	RedDeck      []game.Card
	BlueDeck     []game.Card
	BoardOptions []game.Option
}

type Option func(e *Local)

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMetrics() Option {
	return func(e *Local) {
		e.metrics = metrics.NewCollector()
	}
}

// Local runs a match between two AI players in this process.
type Local struct {
	id       string
	board    *game.Board
	players  map[game.Player]*player.Player
	names    map[game.Player]string
	maxTurns int
	metrics  metrics.Collector
}

var _ Engine = (*Local)(nil)

// LocalEngine starts a board for setup and seats red and blue at it.
func LocalEngine(setup Setup, red, blue strategy.Strategy, options ...Option) (*Local, error) {
	if red == nil || blue == nil {
		return nil, fmt.Errorf("both players need a strategy")
	}
	id := uuid.NewString()
	board := game.NewBoard(setup.BoardOptions...)
	err := board.StartGame(setup.Rows, setup.Cols, setup.RedDeck, setup.BlueDeck, setup.HandSize)
	if err != nil {
		return nil, fmt.Errorf("failed to start match %s: %w", id, err)
	}

	e := &Local{ // Default values
		id:    id,
		board: board,
		players: map[game.Player]*player.Player{
			game.Red:  player.NewAIPlayer(game.Red, board, red),
			game.Blue: player.NewAIPlayer(game.Blue, board, blue),
		},
		names: map[game.Player]string{
			game.Red:  fmt.Sprint(red),
			game.Blue: fmt.Sprint(blue),
		},
		maxTurns: MaxTurns,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

func (e *Local) ID() string {
	return e.id
}

// Board exposes the match board for display.
func (e *Local) Board() game.ReadOnlyBoard {
	return e.board
}

// Run executes the game loop until two passes in a row or the turn limit.
func (e *Local) Run() (Result, error) {
	e.metrics.Start(e.id, e.names[game.Red], e.names[game.Blue])
	log.Info().Str("match", e.id).Msgf("%s (RED) vs %s (BLUE) is starting", e.names[game.Red], e.names[game.Blue])

	turn := 0
	for !e.board.IsOver() && turn < e.maxTurns {
		current, err := e.board.CurrentPlayer()
		if err != nil {
			return Result{}, fmt.Errorf("match %s: %w", e.id, err)
		}
		turn++

		start := time.Now()
		played, err := e.players[current].TakeTurn()
		if err != nil {
			return Result{}, fmt.Errorf("match %s turn %d: %w", e.id, turn, err)
		}
		score, _ := e.board.TotalScore()
		e.metrics.AddMove(metrics.MoveMetric{
			Step:     turn,
			Player:   current,
			Chosen:   played.Chosen,
			Played:   played.Played,
			Duration: time.Since(start),
			Score:    score,
		})

		log.Debug().Str("match", e.id).Int("turn", turn).Msgf("%s: %s", current, played.Played)
	}

	score, _ := e.board.TotalScore()
	finished := e.board.IsOver()
	winner := game.NoPlayer
	if finished {
		winner, _ = e.board.Winner()
	} else {
		log.Warn().Str("match", e.id).Msgf("stopped after %d turns without a result", e.maxTurns)
	}
	gameMetric, moveMetrics := e.metrics.Complete(winner, score, finished)

	log.Info().Str("match", e.id).Msgf("match over, winner: %s (%d-%d)", winner, score.Red, score.Blue)

	return Result{
		Match:    e.id,
		Winner:   winner,
		Score:    score,
		Finished: finished,
		Game:     gameMetric,
		Moves:    moveMetrics,
	}, nil
}
