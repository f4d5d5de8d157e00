package metrics

import (
	"sync/atomic"
	"time"

	"pawns/game"
)

type MoveMetric struct {
	Step     int
	Player   game.Player
	Chosen   game.Move
	Played   game.Move
	Duration time.Duration // Time spent deciding and playing
	Score    game.Score    // Total score after the move
}

func (m MoveMetric) Fallback() bool {
	return m.Chosen != m.Played
}

type GameMetric struct {
	Match      string // Match ID
	Red        string // Strategy names
	Blue       string
	Winner     game.Player
	Score      game.Score
	Finished   bool // False when the turn limit stopped the match
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Placements int
	Passes     int
	Fallbacks  int
}

type Collector interface {
	Start(match, red, blue string)
	AddMove(metric MoveMetric)
	Complete(winner game.Player, score game.Score, finished bool) (GameMetric, []MoveMetric)
}

type collector struct {
	match      string
	red        string
	blue       string
	startTime  time.Time
	moves      []MoveMetric
	placements atomic.Int32
	passes     atomic.Int32
	fallbacks  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(match, red, blue string) {
	m.startTime = time.Now()
	m.match, m.red, m.blue = match, red, blue
	m.moves = nil
	m.placements.Store(0)
	m.passes.Store(0)
	m.fallbacks.Store(0)
}

func (m *collector) AddMove(metric MoveMetric) {
	m.moves = append(m.moves, metric)
	if metric.Played.IsPlacement() {
		m.placements.Add(1)
	} else {
		m.passes.Add(1)
	}
	if metric.Fallback() {
		m.fallbacks.Add(1)
	}
}

func (m *collector) Complete(winner game.Player, score game.Score, finished bool) (GameMetric, []MoveMetric) {
	endTime := time.Now()
	return GameMetric{
		Match:      m.match,
		Red:        m.red,
		Blue:       m.blue,
		Winner:     winner,
		Score:      score,
		Finished:   finished,
		StartTime:  m.startTime,
		EndTime:    endTime,
		Duration:   endTime.Sub(m.startTime),
		TotalMoves: len(m.moves),
		Placements: int(m.placements.Load()),
		Passes:     int(m.passes.Load()),
		Fallbacks:  int(m.fallbacks.Load()),
	}, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(match, red, blue string) {}
func (m *dummyCollector) AddMove(metric MoveMetric)     {}
func (m *dummyCollector) Complete(winner game.Player, score game.Score, finished bool) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: winner, Score: score, Finished: finished}, nil
}
