package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("tracks the running session average", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		require.Zero(t, c.SessionAverage())

		c.AddRound(RoundMetric{Round: 0, Distance: 10})
		c.AddRound(RoundMetric{Round: 1, Distance: 4, Explored: true})
		c.AddRound(RoundMetric{Round: 2, Distance: 1})

		require.InDelta(t, 5.0, c.SessionAverage(), 1e-9)
		history := c.History()
		require.Len(t, history, 3)
		require.InDelta(t, 10.0, history[0].SessionAverage, 1e-9)
		require.InDelta(t, 7.0, history[1].SessionAverage, 1e-9)
		require.InDelta(t, 5.0, history[2].SessionAverage, 1e-9)
	})

	t.Run("summarises the session", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		for i, d := range []int{9, 1, 5, 3, 7} {
			c.AddRound(RoundMetric{Round: i, Distance: d, Explored: i%2 == 0})
		}

		got := c.Complete()
		require.Equal(t, 5, got.Rounds)
		require.Equal(t, 3, got.Explorations)
		require.InDelta(t, 5.0, got.MeanDistance, 1e-9)
		require.InDelta(t, 3.1623, got.StdDevDistance, 1e-4)
		require.InDelta(t, 5.0, got.MedianDistance, 1e-9)
		require.Equal(t, 1, got.BestDistance)
		require.Equal(t, 9, got.WorstDistance)
		require.False(t, got.EndTime.Before(got.StartTime))
	})

	t.Run("empty session", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		got := c.Complete()
		require.Zero(t, got.Rounds)
		require.Zero(t, got.MeanDistance)
	})

	t.Run("restarting clears the history", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddRound(RoundMetric{Distance: 3})
		c.Start()
		require.Empty(t, c.History())
		require.Zero(t, c.SessionAverage())
	})
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start()
	c.AddRound(RoundMetric{Distance: 2})
	c.AddRound(RoundMetric{Distance: 6})

	require.InDelta(t, 4.0, c.SessionAverage(), 1e-9)
	require.Nil(t, c.History())
	require.Equal(t, 2, c.Complete().Rounds)
}
