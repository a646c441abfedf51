package agent

// Random is the source of randomness consumed by the policy and the guesser.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}
