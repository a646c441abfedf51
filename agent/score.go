package agent

import "gridlearn/model"

// RecordOutcome folds one round's distance into the lifetime scoreboard.
func RecordOutcome(state *model.State, distance int) {
	state.TotalRounds++
	state.TotalDistanceSum += int64(distance)

	if state.BestDistance == nil || distance < *state.BestDistance {
		best := distance
		state.BestDistance = &best
	}
	if state.WorstDistance == nil || distance > *state.WorstDistance {
		worst := distance
		state.WorstDistance = &worst
	}
}

// LifetimeAverage is the mean distance over every recorded round, or 0 before
// the first one.
func LifetimeAverage(state *model.State) float64 {
	if state.TotalRounds == 0 {
		return 0
	}
	return float64(state.TotalDistanceSum) / float64(state.TotalRounds)
}
