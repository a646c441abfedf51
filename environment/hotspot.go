package environment

import "gridlearn/grid"

// Random is the randomness the generator draws from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
	NormFloat64() float64
}

// Hotspot places flags near a fixed centre with Gaussian noise, and uniformly
// across the grid otherwise.
type Hotspot struct {
	Width       int
	Height      int
	Center      grid.Point
	StdDev      float64 // In blocks
	Probability float64 // Chance of sampling near Center
}

// Sample draws the true flag location for one round.
func (h Hotspot) Sample(rng Random) grid.Point {
	if rng.Float64() < h.Probability {
		// Conversion truncates toward zero before clamping.
		p := grid.Point{
			X: int(float64(h.Center.X) + rng.NormFloat64()*h.StdDev),
			Y: int(float64(h.Center.Y) + rng.NormFloat64()*h.StdDev),
		}
		return grid.Clamp(p, h.Width, h.Height)
	}
	return grid.Point{
		X: rng.Intn(h.Width),
		Y: rng.Intn(h.Height),
	}
}
