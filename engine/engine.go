package engine

import (
	"pawns/experiments/metrics"
	"pawns/game"
	"pawns/meta"
)

const MaxTurns = meta.MAX_TURNS

type Engine interface {
	// Run plays the match till the game is over or the turn limit is reached
	Run() (Result, error)
}

type Result struct {
	Match    string
	Winner   game.Player // NoPlayer on a tie or an unfinished match
	Score    game.Score
	Finished bool
	Game     metrics.GameMetric
	Moves    []metrics.MoveMetric
}
