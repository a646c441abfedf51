package agent

import "gridlearn/grid"

type Guesser struct {
	Policy EpsilonGreedy
	Radius int // Exploration radius in blocks
	rng    Random
}

func NewGuesser(policy EpsilonGreedy, radius int, rng Random) *Guesser {
	if rng == nil {
		panic("guesser needs a random source")
	}
	return &Guesser{
		Policy: policy,
		Radius: radius,
		rng:    rng,
	}
}

// Guess returns the guess for round and whether it was an exploration guess.
// Exploiting returns belief as is. Exploring jitters each axis by a uniform
// offset in [-Radius, Radius] and clamps the result into the grid.
func (g *Guesser) Guess(round int, belief grid.Point, width, height int) (grid.Point, bool) {
	if !g.Policy.ShouldExplore(round, g.rng) {
		return belief, false
	}
	jittered := grid.Point{
		X: belief.X + g.offset(),
		Y: belief.Y + g.offset(),
	}
	return grid.Clamp(jittered, width, height), true
}

func (g *Guesser) offset() int {
	return g.rng.Intn(2*g.Radius+1) - g.Radius
}
