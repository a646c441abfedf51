package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gridlearn/grid"
	"gridlearn/model"
)

func newState(t *testing.T, width, height int) *model.State {
	t.Helper()
	s, err := model.New(width, height)
	require.NoError(t, err)
	return s
}

func record(t *testing.T, s *model.State, points ...grid.Point) {
	t.Helper()
	for _, p := range points {
		require.NoError(t, RecordObservation(s, p))
	}
}

func TestBeliefCenter(t *testing.T) {
	t.Run("defaults to the grid centre without observations", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 1}, {2, 3}, {7, 4}, {100, 100}, {101, 9}} {
			s := newState(t, dims[0], dims[1])
			require.Equal(t, grid.Point{X: dims[0] / 2, Y: dims[1] / 2}, BeliefCenter(s))
		}
	})

	t.Run("single observation is the belief", func(t *testing.T) {
		s := newState(t, 10, 10)
		record(t, s, grid.Point{X: 7, Y: 2})
		require.Equal(t, grid.Point{X: 7, Y: 2}, BeliefCenter(s))
	})

	t.Run("even ties select the lower middle value", func(t *testing.T) {
		// Column weights [3, 0, 3], rank 2, cumulative 3 after column 0
		s := newState(t, 3, 1)
		s.CellCounts = [][]int64{{3, 0, 3}}
		s.TotalObservations = 6
		require.Equal(t, 0, BeliefCenter(s).X)
	})

	t.Run("odd totals select the middle value", func(t *testing.T) {
		s := newState(t, 5, 5)
		record(t, s, grid.Point{X: 0, Y: 4}, grid.Point{X: 2, Y: 0}, grid.Point{X: 4, Y: 1})
		require.Equal(t, grid.Point{X: 2, Y: 1}, BeliefCenter(s))
	})

	t.Run("axes are computed from independent marginals", func(t *testing.T) {
		// No observation sits at (1, 1) but both marginals have their
		// median there.
		s := newState(t, 3, 3)
		record(t, s, grid.Point{X: 0, Y: 2}, grid.Point{X: 1, Y: 0}, grid.Point{X: 2, Y: 1})
		require.Equal(t, grid.Point{X: 1, Y: 1}, BeliefCenter(s))

		s = newState(t, 3, 3)
		record(t, s, grid.Point{X: 0, Y: 2}, grid.Point{X: 2, Y: 0}, grid.Point{X: 2, Y: 0})
		require.Equal(t, grid.Point{X: 2, Y: 0}, BeliefCenter(s))

		s = newState(t, 3, 3)
		record(t, s, grid.Point{X: 0, Y: 0}, grid.Point{X: 0, Y: 2}, grid.Point{X: 2, Y: 2})
		require.Equal(t, grid.Point{X: 0, Y: 2}, BeliefCenter(s), "median of x=[0,0,2] and y=[0,2,2]")
	})

	t.Run("resists outliers", func(t *testing.T) {
		s := newState(t, 100, 100)
		for i := 0; i < 9; i++ {
			record(t, s, grid.Point{X: 70, Y: 25})
		}
		record(t, s, grid.Point{X: 0, Y: 99})
		require.Equal(t, grid.Point{X: 70, Y: 25}, BeliefCenter(s))
	})

	t.Run("falls back to the last index when counts undershoot", func(t *testing.T) {
		s := newState(t, 4, 4)
		s.TotalObservations = 5 // Inconsistent on purpose
		require.Equal(t, grid.Point{X: 3, Y: 3}, BeliefCenter(s))
	})
}

func TestRecordObservation(t *testing.T) {
	t.Run("updates counts and sums", func(t *testing.T) {
		s := newState(t, 4, 3)
		record(t, s, grid.Point{X: 3, Y: 2}, grid.Point{X: 3, Y: 2}, grid.Point{X: 1, Y: 0})

		require.Equal(t, int64(2), s.CellCounts[2][3])
		require.Equal(t, int64(1), s.CellCounts[0][1])
		require.Equal(t, int64(3), s.TotalObservations)
		require.Equal(t, int64(7), s.SumTrueX)
		require.Equal(t, int64(4), s.SumTrueY)
	})

	t.Run("keeps the cell sum equal to the total", func(t *testing.T) {
		s := newState(t, 6, 5)
		for i := 0; i < 200; i++ {
			record(t, s, grid.Point{X: (i * 7) % 6, Y: (i * 3) % 5})

			var sum int64
			for _, row := range s.CellCounts {
				for _, count := range row {
					sum += count
				}
			}
			require.Equal(t, s.TotalObservations, sum)
		}
		require.NoError(t, s.Validate())
	})

	t.Run("rejects out-of-range coordinates without mutating", func(t *testing.T) {
		s := newState(t, 4, 3)
		for _, p := range []grid.Point{{X: 4, Y: 0}, {X: 0, Y: 3}, {X: -1, Y: 1}, {X: 1, Y: -1}} {
			err := RecordObservation(s, p)
			require.ErrorIs(t, err, model.ErrOutOfBounds)
		}
		require.Equal(t, newState(t, 4, 3), s)
	})
}
