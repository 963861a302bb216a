package metrics

import (
	"time"

	"othello/game"
)

// CutoffReason says why a search node fell back to static evaluation.
type CutoffReason int

const (
	TerminalCutoff CutoffReason = iota
	DepthCutoff
	TimeCutoff
)

type SearchMetric struct {
	Algorithm       string
	Depth           int
	TimeLimit       time.Duration
	Duration        time.Duration
	Expanded        int
	TerminalCutoffs int
	DepthCutoffs    int
	TimeCutoffs     int
	Value           float64 // Evaluation of the chosen move
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   game.Position
	Flips  int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Color
	Winner         game.Color // NoColor on a draw
	Black          int        // Final tile counts
	White          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

// Collector gathers statistics for one search call at a time. Searches are
// single-threaded, so implementations need no synchronisation.
type Collector interface {
	Start(algorithm string, depth int, timeLimit time.Duration)
	AddExpansion()
	AddCutoff(reason CutoffReason)
	Complete(value float64) SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth int, timeLimit time.Duration) {
	m.startTime = time.Now()
	m.metric = SearchMetric{
		Algorithm: algorithm,
		Depth:     depth,
		TimeLimit: timeLimit,
	}
}

func (m *collector) AddExpansion() {
	m.metric.Expanded++
}

func (m *collector) AddCutoff(reason CutoffReason) {
	switch reason {
	case TerminalCutoff:
		m.metric.TerminalCutoffs++
	case DepthCutoff:
		m.metric.DepthCutoffs++
	case TimeCutoff:
		m.metric.TimeCutoffs++
	}
}

func (m *collector) Complete(value float64) SearchMetric {
	m.metric.Duration = time.Since(m.startTime)
	m.metric.Value = value
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int, timeLimit time.Duration) {}
func (m *dummyCollector) AddExpansion()                                              {}
func (m *dummyCollector) AddCutoff(reason CutoffReason)                              {}
func (m *dummyCollector) Complete(value float64) SearchMetric                        { return SearchMetric{} }
