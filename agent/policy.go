package agent

// EpsilonGreedy explores with a probability that decays linearly per round
// down to a floor.
type EpsilonGreedy struct {
	Starting      float64
	Minimum       float64
	DecayPerRound float64
}

func (p EpsilonGreedy) EpsilonForRound(round int) float64 {
	return max(p.Minimum, p.Starting-float64(round)*p.DecayPerRound)
}

// ShouldExplore consumes exactly one draw from rng.
func (p EpsilonGreedy) ShouldExplore(round int, rng Random) bool {
	return rng.Float64() < p.EpsilonForRound(round)
}
