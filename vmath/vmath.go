package vmath

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Abs returns absolute value
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// --- Randomness ---

// FastRand is a xorshift64 generator for cheap deterministic randomness
// Not cryptographic; used for scene generation and jitter
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float returns a uniform float32 in [0, 1)
func (r *FastRand) Float() float32 {
	return float32(r.Next()>>40) / (1 << 24)
}

// Range returns a uniform float32 in [lo, hi)
func (r *FastRand) Range(lo, hi float32) float32 {
	return lo + r.Float()*(hi-lo)
}

// Sign returns -1 or +1 with equal probability
func (r *FastRand) Sign() float32 {
	if r.Next()&1 == 0 {
		return -1
	}
	return 1
}
