package metrics

import (
	"othello/game"
	"time"
)

type SearchMetric struct {
	Algorithm string
	Depth     int
	Score     int // Root score from the mover's perspective
	Nodes     int // Positions entered, root included
	Leaves    int // Positions scored by the evaluator
	Cutoffs   int // Alpha and beta cuts
	Duration  time.Duration
	Aborted   bool // Node budget ran out before the search completed
}

type MoveMetric struct {
	Step   int // Turn number, passes included
	Player game.Color
	Square game.Square
	Pass   bool
	SearchMetric
}

type GameMetric struct {
	Outcome    game.Outcome
	Black      int // Final stone counts
	White      int
	Placed     int
	Passes     int // Total passes over the game
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int // Turns played, passes included
}

// Collector accumulates the statistics of one search. Implementations are not
// safe for concurrent use; each search owns its collector.
type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetAborted()
	Complete(score int) SearchMetric
}

type collector struct {
	algorithm string
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
	aborted   bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth int) {
	*m = collector{
		algorithm: algorithm,
		depth:     depth,
		startTime: time.Now(),
	}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) SetAborted() {
	m.aborted = true
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Depth:     m.depth,
		Score:     score,
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Cutoffs:   m.cutoffs,
		Duration:  time.Since(m.startTime),
		Aborted:   m.aborted,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddLeaf()                          {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) SetAborted()                       {}
func (m *dummyCollector) Complete(score int) SearchMetric   { return SearchMetric{} }
