package agent

import (
	"fmt"

	"gridlearn/grid"
	"gridlearn/model"
)

// BeliefCenter estimates where flags tend to appear as the independent
// per-axis median of the observation counts. With no observations it is the
// grid centre.
func BeliefCenter(state *model.State) grid.Point {
	if state.TotalObservations <= 0 {
		return grid.Center(state.Width, state.Height)
	}
	return grid.Point{
		X: medianX(state),
		Y: medianY(state),
	}
}

// medianRank is the 0-based rank of the median. Even totals select the lower
// of the two middle observations.
func medianRank(total int64) int64 {
	return (total - 1) / 2
}

func medianX(state *model.State) int {
	rank := medianRank(state.TotalObservations)
	var cumulative int64
	for x := 0; x < state.Width; x++ {
		for y := 0; y < state.Height; y++ {
			cumulative += state.CellCounts[y][x]
		}
		if cumulative > rank {
			return x
		}
	}
	return state.Width - 1
}

func medianY(state *model.State) int {
	rank := medianRank(state.TotalObservations)
	var cumulative int64
	for y := 0; y < state.Height; y++ {
		for _, count := range state.CellCounts[y] {
			cumulative += count
		}
		if cumulative > rank {
			return y
		}
	}
	return state.Height - 1
}

// RecordObservation adds one observed flag at truth. Coordinates outside the
// grid are rejected and leave the state untouched.
func RecordObservation(state *model.State, truth grid.Point) error {
	if !state.Contains(truth) {
		return fmt.Errorf("record observation %v on %dx%d grid: %w", truth, state.Width, state.Height, model.ErrOutOfBounds)
	}
	state.CellCounts[truth.Y][truth.X]++
	state.TotalObservations++
	state.SumTrueX += int64(truth.X)
	state.SumTrueY += int64(truth.Y)
	return nil
}
