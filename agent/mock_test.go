package agent

// scriptedRandom replays fixed draws and counts how many were consumed.
type scriptedRandom struct {
	floats     []float64
	ints       []int // Returned as-is, must lie in [0, n)
	floatDraws int
	intDraws   int
	intBounds  []int
}

func (r *scriptedRandom) Float64() float64 {
	v := r.floats[r.floatDraws%len(r.floats)]
	r.floatDraws++
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	r.intBounds = append(r.intBounds, n)
	v := r.ints[r.intDraws%len(r.ints)]
	r.intDraws++
	return v
}
