package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gridlearn/agent"
	"gridlearn/config"
	"gridlearn/environment"
	"gridlearn/experiments/metrics"
	"gridlearn/grid"
	"gridlearn/model"
	"gridlearn/store"
)

// StateStore loads and transactionally updates the persisted model.
type StateStore interface {
	LoadOrCreate() (*model.State, error)
	Update(fn func(state *model.State) error) (*model.State, error)
}

type EventLog interface {
	Append(e store.Event) error
}

type Engine struct {
	store       StateStore
	events      EventLog
	guesser     *agent.Guesser
	environment environment.Hotspot
	rng         environment.Random
	metrics     metrics.Collector
	rounds      int
	logEvery    int
}

type Option func(e *Engine)

func WithEventLog(events EventLog) Option {
	return func(e *Engine) {
		if events != nil {
			e.events = events
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// LocalEngine wires a guesser and a hotspot environment from cfg around st.
// rng drives the policy, the exploration jitter and the environment.
func LocalEngine(cfg config.Config, st StateStore, rng environment.Random, options ...Option) *Engine {
	if st == nil {
		panic("engine needs a state store")
	}
	policy := agent.EpsilonGreedy{
		Starting:      cfg.Policy.StartingEpsilon,
		Minimum:       cfg.Policy.MinimumEpsilon,
		DecayPerRound: cfg.Policy.DecayPerRound,
	}
	e := &Engine{ // Default values
		store:   st,
		guesser: agent.NewGuesser(policy, cfg.Policy.Radius, rng),
		environment: environment.Hotspot{
			Width:       cfg.Grid.Width,
			Height:      cfg.Grid.Height,
			Center:      grid.Point{X: cfg.Hotspot.X, Y: cfg.Hotspot.Y},
			StdDev:      cfg.Hotspot.StdDev,
			Probability: cfg.Hotspot.Probability,
		},
		rng:      rng,
		metrics:  metrics.NewDummyCollector(),
		rounds:   cfg.Rounds,
		logEvery: cfg.LogEvery,
	}
	for _, option := range options {
		option(e)
	}
	if e.logEvery <= 0 {
		e.logEvery = 1
	}
	return e
}

// Run plays the configured number of rounds, stopping early if ctx is done.
func (e *Engine) Run(ctx context.Context) (metrics.SessionMetric, error) {
	e.metrics.Start()
	log.Info().Msgf("starting session of %d rounds...", e.rounds)

	for round := 0; round < e.rounds; round++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Msgf("session interrupted before round %d", round)
			return e.metrics.Complete(), err
		}

		metric, err := e.PlayRound(round)
		if err != nil {
			return e.metrics.Complete(), err
		}
		if round%e.logEvery == 0 {
			logRound(metric, e.metrics.SessionAverage())
		}
	}

	summary := e.metrics.Complete()
	log.Info().Msgf("completed session of %d rounds", summary.Rounds)
	return summary, nil
}

// PlayRound guesses, reveals the flag and records the outcome for one round.
func (e *Engine) PlayRound(round int) (metrics.RoundMetric, error) {
	start := time.Now()

	state, err := e.store.LoadOrCreate()
	if err != nil {
		return metrics.RoundMetric{}, fmt.Errorf("round %d: %w", round, err)
	}
	belief := agent.BeliefCenter(state)
	guess, explored := e.guesser.Guess(round, belief, state.Width, state.Height)

	truth := e.environment.Sample(e.rng)
	distance := grid.ManhattanDistance(guess, truth)

	updated, err := e.store.Update(func(s *model.State) error {
		if err := agent.RecordObservation(s, truth); err != nil {
			return err
		}
		agent.RecordOutcome(s, distance)
		return nil
	})
	if err != nil {
		return metrics.RoundMetric{}, fmt.Errorf("round %d: %w", round, err)
	}

	epsilon := e.guesser.Policy.EpsilonForRound(round)
	if e.events != nil {
		err := e.events.Append(store.Event{
			RoundIndex:        round,
			GuessedLocation:   guess,
			TrueLocation:      truth,
			ManhattanDistance: distance,
			Explored:          explored,
			Epsilon:           epsilon,
		})
		if err != nil {
			return metrics.RoundMetric{}, fmt.Errorf("round %d: %w", round, err)
		}
	}

	metric := metrics.RoundMetric{
		Round:           round,
		Epsilon:         epsilon,
		Explored:        explored,
		Guess:           guess,
		Belief:          belief,
		Truth:           truth,
		Distance:        distance,
		LifetimeAverage: agent.LifetimeAverage(updated),
		Duration:        time.Since(start),
	}
	e.metrics.AddRound(metric)
	metric.SessionAverage = e.metrics.SessionAverage()

	log.Debug().
		Int("round", round).
		Int64("observations", updated.TotalObservations).
		Int64("lifetimeRounds", updated.TotalRounds).
		Msg("model updated")
	return metric, nil
}

func logRound(m metrics.RoundMetric, sessionAverage float64) {
	log.Info().
		Int("round", m.Round).
		Float64("epsilon", m.Epsilon).
		Bool("explored", m.Explored).
		Stringer("guess", m.Guess).
		Stringer("belief", m.Belief).
		Stringer("true", m.Truth).
		Int("distance", m.Distance).
		Str("sessionAvg", fmt.Sprintf("%.2f", sessionAverage)).
		Str("lifetimeAvg", fmt.Sprintf("%.2f", m.LifetimeAverage)).
		Msg("round")
}
