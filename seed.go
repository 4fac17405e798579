package flownoise

import (
	"math"
	"math/rand"
	"time"
)

// maxRandomSeed is the upper bound (exclusive) of seeds picked by NewRandom.
const maxRandomSeed = 65536

// prng is the Park-Miller minimal standard generator driving the permutation shuffle.
// The state is kept as a float64 so fractional and very large seeds follow the same
// multiply/remainder sequence as an IEEE double implementation would.
type prng struct {
	a     float64
	m     float64
	state float64
}

func newPrng(seed float64) *prng {
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		seed = 0
	}
	return &prng{
		a:     16807,
		m:     0x7fffffff,
		state: seed,
	}
}

func (prng *prng) next() float64 {
	prng.state = math.Mod(prng.state*prng.a, prng.m)
	return prng.state
}

// intn returns an index in [0, n) derived from the next state.
// Non-integer and negative states are floored and wrapped into range.
func (prng *prng) intn(n int) int {
	j := int(math.Floor(math.Mod(prng.next(), float64(n))))
	if j < 0 {
		j += n
	}
	return j
}

// shuffle builds the 256 entry seeded permutation and doubles it into dst,
// so that neighbour lookups at index+1 never need a modulo.
func shuffle(seed float64, dst *[512]uint8) {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	// The iteration order is part of the seed contract.
	rng := newPrng(seed)
	for i := 255; i > 0; i-- {
		j := rng.intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	for i := range dst {
		dst[i] = p[i&255]
	}
}

// NewRandom creates a noise generator seeded from r with a value in [0, 65536).
// A nil r uses a time seeded source.
func NewRandom(r *rand.Rand) *Noise {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return New(r.Float64() * maxRandomSeed)
}
