package metrics

import (
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"

	"gridlearn/grid"
)

type RoundMetric struct {
	Round           int
	Epsilon         float64
	Explored        bool
	Guess           grid.Point
	Belief          grid.Point // Captured before the round's update
	Truth           grid.Point
	Distance        int
	SessionAverage  float64
	LifetimeAverage float64
	Duration        time.Duration
}

type SessionMetric struct {
	Rounds         int
	Explorations   int
	MeanDistance   float64
	StdDevDistance float64
	MedianDistance float64
	BestDistance   int
	WorstDistance  int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type Collector interface {
	Start()
	AddRound(metric RoundMetric)
	SessionAverage() float64
	History() []RoundMetric
	Complete() SessionMetric
}

type collector struct {
	startTime time.Time
	history   []RoundMetric
	distances []float64
	sum       int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.history = nil
	m.distances = nil
	m.sum = 0
}

// AddRound records metric and fills in its session average.
func (m *collector) AddRound(metric RoundMetric) {
	m.sum += metric.Distance
	m.distances = append(m.distances, float64(metric.Distance))
	metric.SessionAverage = m.SessionAverage()
	m.history = append(m.history, metric)
}

func (m *collector) SessionAverage() float64 {
	if len(m.distances) == 0 {
		return 0
	}
	return float64(m.sum) / float64(len(m.distances))
}

func (m *collector) History() []RoundMetric {
	return m.history
}

func (m *collector) Complete() SessionMetric {
	end := time.Now()
	metric := SessionMetric{
		Rounds:    len(m.history),
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
	}
	if len(m.distances) == 0 {
		return metric
	}

	for _, r := range m.history {
		if r.Explored {
			metric.Explorations++
		}
	}
	sorted := slices.Clone(m.distances)
	slices.Sort(sorted)
	metric.MeanDistance = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		metric.StdDevDistance = stat.StdDev(sorted, nil)
	}
	metric.MedianDistance = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	metric.BestDistance = int(math.Round(sorted[0]))
	metric.WorstDistance = int(math.Round(sorted[len(sorted)-1]))
	return metric
}

type dummyCollector struct {
	sum    int
	rounds int
}

// NewDummyCollector keeps only the running session average.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start() { m.sum, m.rounds = 0, 0 }
func (m *dummyCollector) AddRound(metric RoundMetric) {
	m.sum += metric.Distance
	m.rounds++
}
func (m *dummyCollector) SessionAverage() float64 {
	if m.rounds == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.rounds)
}
func (m *dummyCollector) History() []RoundMetric  { return nil }
func (m *dummyCollector) Complete() SessionMetric { return SessionMetric{Rounds: m.rounds} }
